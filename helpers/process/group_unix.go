//go:build aix || android || darwin || dragonfly || freebsd || hurd || illumos || linux || netbsd || openbsd || solaris

package process

import (
	"os/exec"
	"syscall"
)

// setProcessGroup starts the command as a group leader, killers signal the
// negative pid. There is no window to hide outside Windows.
func setProcessGroup(c *exec.Cmd, _ bool) {
	c.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}
