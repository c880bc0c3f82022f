// Package player asks the operating system to open a file with the user's
// default application.
package player

import (
	"os/exec"
	"runtime"

	"github.com/user/inout-extractor-cli/deps"
)

// openCommand builds the platform launcher command for path.
func openCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// Play issues a fire-and-forget open request for the video at path. It
// checks that the launcher is installed first and returns an error with an
// install link if not; once the launcher has started, its exit status is
// never reported back to the caller.
func Play(path string) error {
	if err := deps.CheckLauncher(); err != nil {
		return err
	}

	cmd := openCommand(path)
	if err := cmd.Start(); err != nil {
		return err
	}

	// Reap the launcher so it doesn't linger as a zombie.
	go func() { _ = cmd.Wait() }()

	return nil
}
