package commands

import (
	"errors"

	"kirim/internal/pkg/guard"
)

var (
	ErrProcessPaymentNotificationCommandIsNotConstructed = errors.New(
		"ProcessPaymentNotificationCommand must be created via NewProcessPaymentNotificationCommand constructor",
	)
	ErrNotificationPayloadIsRequired = errors.New("notification payload is required")
	ErrNotificationAttemptIsInvalid  = errors.New("notification attempt must be positive")
)

// ProcessPaymentNotificationCommand represents one processing attempt of a
// raw payment-gateway webhook payload. taskID is stable across retries of
// the same notification.
type ProcessPaymentNotificationCommand struct { //nolint:recvcheck //using for validation
	taskID  string
	payload []byte
	attempt int

	guard guard.ConstructorGuard
}

// NewProcessPaymentNotificationCommand creates a command for one attempt.
func NewProcessPaymentNotificationCommand(
	taskID string, payload []byte, attempt int,
) (ProcessPaymentNotificationCommand, error) {
	cmd := ProcessPaymentNotificationCommand{
		taskID: taskID,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPayload(payload),
		cmd.setAttempt(attempt),
	); err != nil {
		return ProcessPaymentNotificationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentNotificationCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentNotificationCommandIsNotConstructed)
}

// TaskID returns the retry-stable task identifier.
func (c ProcessPaymentNotificationCommand) TaskID() string {
	return c.taskID
}

// Payload returns the raw notification body.
func (c ProcessPaymentNotificationCommand) Payload() []byte {
	return c.payload
}

// Attempt returns the 1-based processing attempt number.
func (c ProcessPaymentNotificationCommand) Attempt() int {
	return c.attempt
}

func (c *ProcessPaymentNotificationCommand) setPayload(payload []byte) error {
	if len(payload) == 0 {
		return ErrNotificationPayloadIsRequired
	}
	c.payload = payload
	return nil
}

func (c *ProcessPaymentNotificationCommand) setAttempt(attempt int) error {
	if attempt < 1 {
		return ErrNotificationAttemptIsInvalid
	}
	c.attempt = attempt
	return nil
}
