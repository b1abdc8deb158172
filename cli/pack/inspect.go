package pack

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/gorpm/rpmpack/internal/rpmpkg"
	"github.com/gorpm/rpmpack/internal/rpmtag"
)

// Inspect reads the RPM file at path and renders to w its lead name, arch
// and os numbers, a table of its identity tags (name, version, release,
// summary, license) and a table of its files. Signature tags are not shown.
func Inspect(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("pack: opening %q: %w", path, err)
	}
	defer f.Close()

	view, err := rpmpkg.Read(f)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "lead name: %s  arch: %d  os: %d\n", view.Lead.Name, view.Lead.ArchNum, view.Lead.OSNum)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"tag", "value"})
	for _, tag := range []rpmtag.Tag{rpmtag.Name, rpmtag.Version, rpmtag.Release, rpmtag.Summary, rpmtag.License} {
		if v, ok := view.Header.Get(tag); ok {
			t.AppendRow(table.Row{tag, v.String})
		}
	}
	t.Render()

	files := table.NewWriter()
	files.SetOutputMirror(w)
	files.AppendHeader(table.Row{"name", "size"})
	for _, f := range view.Files {
		files.AppendRow(table.Row{f.Name, f.Size})
	}
	files.Render()

	return nil
}
