package rotation

import (
	"errors"

	"go.uber.org/multierr"
)

var errNoFailures = errors.New("no failures recorded")

// FatalError ends rotation once the failure tolerance is exceeded. It carries every
// failure accumulated before the one that tripped the threshold.
type FatalError struct {
	Failures []error
}

func (e *FatalError) Error() string {
	if len(e.Failures) == 0 {
		return "Failures: " + errNoFailures.Error()
	}
	return "Failures: " + multierr.Combine(e.Failures...).Error()
}

func (e *FatalError) Unwrap() []error {
	return append([]error(nil), e.Failures...)
}
