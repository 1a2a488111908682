package process

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

func setProcessGroup(c *exec.Cmd, hideWindow bool) {
	flags := uint32(windows.CREATE_NEW_PROCESS_GROUP)
	if hideWindow {
		flags |= windows.CREATE_NO_WINDOW
	}

	c.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: flags,
		HideWindow:    hideWindow,
	}
}
