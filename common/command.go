package common

import (
	"github.com/urfave/cli"
	clihelpers "gitlab.com/gitlab-org/golang-cli-helpers"
)

var commands []cli.Command

// Commander executes the command with the cli.Context.
type Commander interface {
	Execute(c *cli.Context)
}

// CommanderFunc allows the registration of commands without having to
// explicitly implement the Commander interface for simple functions.
type CommanderFunc func(*cli.Context)

// Execute provides default implementation for Commander interface.
func (cf CommanderFunc) Execute(c *cli.Context) {
	cf(c)
}

// NewCommand constructs a command with the given name, usage, and flags. The
// flags described by the struct tags of data are appended.
func NewCommand(name, usage string, data Commander, flags ...cli.Flag) cli.Command {
	return cli.Command{
		Name:   name,
		Usage:  usage,
		Action: data.Execute,
		Flags:  append(flags, clihelpers.GetFlagsFromStruct(data)...),
	}
}

func RegisterCommand(command cli.Command) {
	commands = append(commands, command)
}

func RegisterCommand2(name, usage string, data Commander, flags ...cli.Flag) {
	RegisterCommand(NewCommand(name, usage, data, flags...))
}

func GetCommands() []cli.Command {
	return commands
}
