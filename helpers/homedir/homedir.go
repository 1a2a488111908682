package homedir

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
)

type HomeDir struct {
	os               string
	workingDirectory func() (string, error)
	currentUser      func() (*user.User, error)
	userHomeDir      func() (string, error)
}

func New() HomeDir {
	return HomeDir{
		os:               runtime.GOOS,
		workingDirectory: os.Getwd,
		currentUser:      user.Current,
		userHomeDir:      os.UserHomeDir,
	}
}

func (hd HomeDir) GetWDOrEmpty() string {
	dir, err := hd.workingDirectory()
	if err == nil {
		return dir
	}
	return ""
}

// Get returns the current user's home directory, or an empty string when it
// can't be detected.
func (hd HomeDir) Get() string {
	home, _ := hd.userHomeDir()
	if home == "" && hd.os != "windows" {
		if u, err := hd.currentUser(); err == nil {
			return u.HomeDir
		}
	}
	return home
}

// ConfigDir returns the hidden application directory in the user's home,
// falling back to the working directory.
func (hd HomeDir) ConfigDir(app string) string {
	if home := hd.Get(); home != "" {
		return filepath.Join(home, "."+app)
	}

	return hd.GetWDOrEmpty()
}

// Expand replaces a leading ~ of path with the home directory.
func (hd HomeDir) Expand(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}

	home := hd.Get()
	if home == "" {
		return path
	}

	return filepath.Join(home, path[1:])
}

// Key returns the name of the variable holding the home directory.
func (hd HomeDir) Key() string {
	if hd.os == "windows" {
		return "USERPROFILE"
	}

	return "HOME"
}
