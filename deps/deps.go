package deps

import (
	"fmt"
	"os/exec"
	"runtime"
)

const (
	FfmpegInstallURL   = "https://ffmpeg.org/download.html"
	XdgUtilsInstallURL = "https://www.freedesktop.org/wiki/Software/xdg-utils/"
)

// DependencyError contains information about a missing dependency
type DependencyError struct {
	Name       string
	InstallURL string
}

func (e *DependencyError) Error() string {
	if e.InstallURL == "" {
		return fmt.Sprintf("%s not found", e.Name)
	}
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

// CheckFfmpeg checks if ffmpeg is installed and available in PATH
func CheckFfmpeg() error {
	_, err := exec.LookPath("ffmpeg")
	if err != nil {
		return &DependencyError{
			Name:       "ffmpeg",
			InstallURL: FfmpegInstallURL,
		}
	}
	return nil
}

// LauncherName returns the platform command used to open a file with the
// default application.
func LauncherName() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "rundll32"
	default:
		return "xdg-open"
	}
}

// CheckLauncher checks if the OS default-open launcher is available in PATH
func CheckLauncher() error {
	name := LauncherName()
	_, err := exec.LookPath(name)
	if err != nil {
		url := ""
		if name == "xdg-open" {
			url = XdgUtilsInstallURL
		}
		return &DependencyError{
			Name:       name,
			InstallURL: url,
		}
	}
	return nil
}

// CheckAll checks all dependencies and returns a slice of errors for missing ones
func CheckAll() []error {
	var errors []error

	if err := CheckFfmpeg(); err != nil {
		errors = append(errors, err)
	}

	if err := CheckLauncher(); err != nil {
		errors = append(errors, err)
	}

	return errors
}
