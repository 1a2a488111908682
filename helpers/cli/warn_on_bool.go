package cli_helpers

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// WarnOnBool logs a warning when a boolean flag looks passed as "--flag true".
// urfave/cli treats the value as a positional argument, so "--hidden false"
// still runs hidden.
func WarnOnBool(args []string) {
	for idx, a := range args[1:] {
		arg := strings.ToLower(a)
		if arg != "true" && arg != "false" {
			continue
		}

		supposedFlag := "--hidden"
		if idx > 0 {
			supposedFlag = args[idx]
		}

		logrus.Warningf("boolean parameters must be passed in the command line with %s=%s", supposedFlag, arg)
		logrus.Warningln("parameters after this may be ignored")

		return
	}
}
