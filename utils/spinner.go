package utils

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

var activeSpinner *spinner.Spinner

func StartSpinner(w io.Writer) {
	activeSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	activeSpinner.Suffix = " Examining network interfaces..."
	activeSpinner.Start()
}

// StopSpinner is a no-op when no spinner is running
func StopSpinner() {
	if activeSpinner == nil {
		return
	}
	activeSpinner.Stop()
	activeSpinner = nil
}
