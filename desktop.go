package main

import (
	"errors"
	"sync"

	"github.com/sqweek/dialog"
	"golang.design/x/clipboard"
)

// Desktop is the host integration used by UI actions.
type Desktop interface {
	// ChooseDirectory blocks until the user picks a directory or cancels.
	ChooseDirectory(start string) (string, error)
	CopyText(s string) error
}

var errNoClipboard = errors.New("clipboard unavailable")

// systemDesktop uses native dialogs and the system clipboard.
type systemDesktop struct {
	clipboardOnce sync.Once
	clipboardErr  error
}

func (d *systemDesktop) ChooseDirectory(start string) (string, error) {
	b := dialog.Directory().Title("Open image directory")
	if start != "" {
		b = b.SetStartDir(start)
	}
	return b.Browse()
}

func (d *systemDesktop) CopyText(s string) error {
	d.clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			d.clipboardErr = errors.Join(errNoClipboard, err)
		}
	})
	if d.clipboardErr != nil {
		return d.clipboardErr
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}
