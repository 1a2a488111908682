package main

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"gitlab.com/aero-tools/flightscript/commands"
	"gitlab.com/aero-tools/flightscript/common"
	cli_helpers "gitlab.com/aero-tools/flightscript/helpers/cli"
	"gitlab.com/aero-tools/flightscript/log"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Usage = "build and run FlightStream command scripts"
	app.Version = common.AppVersion.ShortLine()
	cli.VersionPrinter = common.AppVersion.Printer
	app.Commands = common.GetCommands()
	app.CommandNotFound = func(context *cli.Context, command string) {
		logrus.Fatalln("Command", command, "not found.")
	}

	cli_helpers.LogRuntimePlatform(app)
	cli_helpers.FixHOME(app)

	log.ConfigureLogging(app)

	return app
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			// log panics forces exit
			if _, ok := r.(*logrus.Entry); ok {
				os.Exit(1)
			}
			panic(r)
		}
	}()

	cli_helpers.InitCli()
	cli_helpers.WarnOnBool(os.Args)
	commands.RegisterLogHook()

	if err := newApp().Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
