package shutdown

import (
	"os"

	"golang.org/x/sys/unix"
)

// Provider supplies the set of signals that should stop the process.
type Provider interface {
	ShutdownSignals() []os.Signal
}

type DefaultProvider struct{}

func NewDefaultProvider() *DefaultProvider {
	return &DefaultProvider{}
}

func (p *DefaultProvider) ShutdownSignals() []os.Signal {
	return []os.Signal{os.Interrupt, unix.SIGTERM, unix.SIGHUP}
}
