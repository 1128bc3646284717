package locator

import (
	"time"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// DefaultWaitTimeout bounds every readiness wait
const DefaultWaitTimeout = 120 * time.Second

// MinWaitTimeout is the smallest bound the browser driver can express;
// it counts in whole milliseconds and treats zero as no timeout
const MinWaitTimeout = time.Millisecond

// Waiter blocks until a locator's first match is visible
type Waiter struct {
	timeout time.Duration
	strict  bool
	logger  *logrus.Logger
}

// NewWaiter creates a waiter. A non-strict waiter logs failed waits and lets
// the caller go on as if the element were ready; a strict one returns them.
// Timeouts below MinWaitTimeout fall back to DefaultWaitTimeout.
func NewWaiter(timeout time.Duration, strict bool, logger *logrus.Logger) *Waiter {
	if timeout < MinWaitTimeout {
		timeout = DefaultWaitTimeout
	}
	return &Waiter{
		timeout: timeout,
		strict:  strict,
		logger:  logger,
	}
}

// Timeout returns the configured wait bound
func (w *Waiter) Timeout() time.Duration {
	return w.timeout
}

// Strict reports whether wait failures propagate
func (w *Waiter) Strict() bool {
	return w.strict
}

// AwaitVisible waits for loc to become visible
func (w *Waiter) AwaitVisible(loc interfaces.Locator) error {
	err := loc.First().WaitForVisible(w.timeout)
	if err == nil {
		return nil
	}

	waitErr := &entities.WaitTimeoutError{Locator: loc.Describe(), Timeout: w.timeout, Cause: err}
	if w.strict {
		return waitErr
	}

	w.logger.WithError(waitErr).WithField("locator", loc.Describe()).
		Error("Failed to wait for the element to be displayed")
	return nil
}
