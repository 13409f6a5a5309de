package shutdown

import (
	"os"
	"os/signal"
)

// Notifier subscribes channels to OS signals.
type Notifier interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

type SignalNotifier struct{}

func NewSignalNotifier() *SignalNotifier {
	return &SignalNotifier{}
}

func (s *SignalNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (s *SignalNotifier) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}
