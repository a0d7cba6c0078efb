package explorer

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"linkhoard/internal/ports"
)

// Opener implements ports.Revealer using the platform file browser
type Opener struct{}

// Ensure Opener implements Revealer
var _ ports.Revealer = (*Opener)(nil)

// NewOpener creates a new file browser opener
func NewOpener() *Opener {
	return &Opener{}
}

// Reveal shows the path in the file browser: directories open directly,
// files are selected in their containing window where the platform
// supports it.
func (o *Opener) Reveal(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot reveal %s: %w", path, err)
	}

	name, args, err := revealCommand(path, runtime.GOOS, info.IsDir())
	if err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}

func revealCommand(path, goos string, isDir bool) (string, []string, error) {
	switch goos {
	case "windows":
		if isDir {
			return "explorer", []string{path}, nil
		}
		return "explorer", []string{"/select," + path}, nil
	case "darwin":
		if isDir {
			return "open", []string{path}, nil
		}
		return "open", []string{"-R", path}, nil
	case "linux":
		// xdg-open has no select flag; open the containing directory
		if isDir {
			return "xdg-open", []string{path}, nil
		}
		return "xdg-open", []string{filepath.Dir(path)}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
