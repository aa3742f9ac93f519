package launcher

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Launcher opens a target (a track URL) outside the terminal.
type Launcher interface {
	Open(ctx context.Context, target string) error
}

type OSLauncher struct{}

func (OSLauncher) Open(_ context.Context, target string) error {
	if target == "" {
		return fmt.Errorf("nothing to open")
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "linux", "freebsd", "openbsd":
		cmd = exec.Command("xdg-open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return fmt.Errorf("opening links is not supported on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	return nil
}
