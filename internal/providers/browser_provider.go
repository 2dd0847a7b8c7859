package providers

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"movie-alert/internal/structures"
)

type BrowserProviderInterface interface {
	Open(url string) error
}

type BrowserProvider struct {
	command []string
	logger  Logger
}

func NewBrowserProvider(conf *structures.Config, logger Logger) BrowserProviderInterface {
	command := strings.Fields(conf.Browser.Command)
	if len(command) == 0 {
		command = defaultBrowserCommand(runtime.GOOS)
	}
	return &BrowserProvider{
		command: command,
		logger:  logger,
	}
}

func defaultBrowserCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// Open starts the viewer and returns without waiting for it. The child is
// reaped in the background.
func (b *BrowserProvider) Open(url string) error {
	args := append(append([]string{}, b.command[1:]...), url)
	cmd := exec.Command(b.command[0], args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("unable to start %s: %w", b.command[0], err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			b.logger.Debugf(TypeNotify, "Browser command for %s exited: %s", url, err)
		}
	}()
	return nil
}
