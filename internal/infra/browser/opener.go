// Package browser opens URLs with the platform's default handler.
package browser

import (
	"errors"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/aalvaropc/pokedex/internal/domain"
	"github.com/aalvaropc/pokedex/internal/ports"
)

type Opener struct {
	goos  string
	start func(name string, args ...string) error
}

type Option func(*Opener)

// WithStarter replaces process spawning; useful for tests.
func WithStarter(start func(name string, args ...string) error) Option {
	return func(o *Opener) { o.start = start }
}

// WithGOOS overrides the detected operating system.
func WithGOOS(goos string) Option {
	return func(o *Opener) { o.goos = goos }
}

func NewOpener(opts ...Option) *Opener {
	o := &Opener{
		goos: runtime.GOOS,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start() //nolint:noctx
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var _ ports.LinkOpener = (*Opener)(nil)

func (o *Opener) Open(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") {
		return &domain.OpError{
			Op:   "browser.open",
			Kind: domain.KindInvalidConfig,
			Path: raw,
			Err:  errors.New("only http(s) URLs can be opened"),
		}
	}

	var name string
	var args []string
	switch o.goos {
	case "darwin":
		name, args = "open", []string{raw}
	case "windows":
		name, args = "rundll32", []string{"url.dll,FileProtocolHandler", raw}
	default:
		name, args = "xdg-open", []string{raw}
	}

	if err := o.start(name, args...); err != nil {
		return &domain.OpError{
			Op:   "browser.open",
			Kind: domain.KindExecution,
			Path: raw,
			Err:  err,
		}
	}
	return nil
}
