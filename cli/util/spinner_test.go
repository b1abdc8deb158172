package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWithSpinnerRunsWork(t *testing.T) {
	called := false
	err := RunWithSpinner("testing", func() error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestRunWithSpinnerPropagatesError(t *testing.T) {
	want := errors.New("boom")
	err := RunWithSpinner("testing", func() error {
		return want
	})
	assert.Equal(t, want, err)
}
