//go:build !windows

package cli_helpers

// InitCli is a no-op, terminals outside Windows handle colors already.
func InitCli() {}
