package process

import (
	"os/exec"
	"strconv"
)

type windowsKiller struct {
	logger Logger
	cmd    Commander
}

func newKiller(logger Logger, cmd Commander) killer {
	return &windowsKiller{
		logger: logger,
		cmd:    cmd,
	}
}

// Terminate asks the process tree to close. FlightStream runs as a windowed
// application and usually honors the close request.
func (pk *windowsKiller) Terminate() {
	if pk.cmd.Process() == nil {
		return
	}

	if err := taskKill(pk.cmd.Process().Pid, false); err != nil {
		pk.logger.Warn("Failed to terminate process:", err)
	}
}

func (pk *windowsKiller) ForceKill() {
	if pk.cmd.Process() == nil {
		return
	}

	if err := taskKill(pk.cmd.Process().Pid, true); err != nil {
		pk.logger.Warn("Failed to force-kill:", err)
	}
}

func taskKill(pid int, force bool) error {
	args := []string{"/T", "/PID", strconv.Itoa(pid)}
	if force {
		args = append([]string{"/F"}, args...)
	}

	return exec.Command("taskkill", args...).Run()
}
