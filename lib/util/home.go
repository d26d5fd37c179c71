package util

import "os"

// UserHome returns the current user's home directory, falling back to
// the working directory when the environment does not expose one.
func UserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
