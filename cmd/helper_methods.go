package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	kerrors "github.com/PolarWolf314/enigma/internal/errors"
	"github.com/PolarWolf314/enigma/internal/ui"

	"github.com/briandowns/spinner"
)

// startSpinner starts a spinner on w unless verbose or debug output is on,
// where it would interleave with log lines. The returned cleanup stops it.
func startSpinner(message string, w io.Writer) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = w
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			s.Stop()
		}
	}

	return s, cleanup
}

// describeError turns workflow errors into a user-facing message with a hint.
func describeError(err error) string {
	msg := ui.Error.Sprint("✗") + " " + err.Error()

	var hint string
	switch {
	case errors.Is(err, kerrors.ErrUnknownDisk), errors.Is(err, kerrors.ErrDiskNotFound):
		hint = "Run " + ui.Code.Sprint("enigma disks list") + " to see the available disks"
	case errors.Is(err, kerrors.ErrTooFewDisks), errors.Is(err, kerrors.ErrInsufficientDisks):
		hint = "A configuration needs at least three disks, e.g. " + ui.Secret.Sprint("A12,E43,B27")
	case errors.Is(err, kerrors.ErrOffsetOutOfRange), errors.Is(err, kerrors.ErrInvalidOffset):
		hint = "Disk offsets run from 0 through 61"
	case errors.Is(err, kerrors.ErrWireConflict):
		hint = "Each letter can only be wired to one other letter"
	case errors.Is(err, kerrors.ErrConfigExists):
		hint = "Use " + ui.Flag.Sprint("--force") + " to overwrite it"
	case errors.Is(err, kerrors.ErrConfigNotFound):
		hint = "Run " + ui.Code.Sprint("enigma config init") + " to create one"
	}

	if hint != "" {
		msg += "\n" + ui.Info.Sprint("→") + " " + hint
	}
	return msg
}

// reportError prints err for the user and returns a plain error so cobra
// exits non-zero without printing usage.
func reportError(w io.Writer, err error) error {
	fmt.Fprint(w, ui.EnsureNewline(describeError(err)))
	return err
}
