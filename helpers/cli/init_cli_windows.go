package cli_helpers

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

// InitCli turns on virtual terminal processing so the colored log formatter
// and the script highlighting render in the Windows console.
func InitCli() {
	for _, handle := range []windows.Handle{windows.Stdout, windows.Stderr} {
		var mode uint32
		if err := windows.GetConsoleMode(handle, &mode); err != nil {
			continue
		}

		err := windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
		if err != nil {
			logrus.WithError(err).Info("Did not set console mode for cli")
		}
	}
}
