package cli_helpers

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"gitlab.com/aero-tools/flightscript/helpers/homedir"
)

// FixHOME sets the home variable when it's missing so the default config
// file and ~ paths resolve.
func FixHOME(app *cli.App) {
	appBefore := app.Before

	app.Before = func(c *cli.Context) error {
		hd := homedir.New()
		if key := hd.Key(); os.Getenv(key) == "" {
			value := hd.Get()
			if value == "" {
				return fmt.Errorf("the %q is not set", key)
			}
			_ = os.Setenv(key, value)
		}

		if appBefore != nil {
			return appBefore(c)
		}
		return nil
	}
}
