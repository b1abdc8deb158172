// Package util holds small CLI presentation helpers shared by commands.
package util

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

var (
	spinnerPicture    = spinner.CharSets[9]
	spinnerUpdateTime = 100 * time.Millisecond
)

// RunWithSpinner runs work, showing an animated spinner with the given
// prefix for its duration if stdout is a terminal.
func RunWithSpinner(prefix string, work func() error) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return work()
	}

	s := spinner.New(spinnerPicture, spinnerUpdateTime)
	if prefix != "" {
		s.Prefix = fmt.Sprintf("%s ", strings.TrimSpace(prefix))
	}

	var wg sync.WaitGroup
	wg.Add(1)
	var err error
	done := make(chan struct{})

	go func() {
		defer wg.Done()
		s.Start()
		<-done
		s.Stop()
	}()

	err = work()
	close(done)
	wg.Wait()
	return err
}
