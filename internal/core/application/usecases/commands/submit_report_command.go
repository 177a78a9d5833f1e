package commands

import (
	"errors"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/order"
	"kirim/internal/pkg/guard"
)

var ErrSubmitReportCommandIsNotConstructed = errors.New(
	"SubmitReportCommand must be created via NewSubmitReportCommand constructor",
)

// SubmitReportCommand represents a driver filing a field report against an
// order. Notes and photoRef are optional.
type SubmitReportCommand struct { //nolint:recvcheck //using for validation
	reportID kernel.UUID
	orderID  kernel.UUID
	driverID kernel.UUID
	stage    order.ReportStage
	notes    string
	photoRef string

	guard guard.ConstructorGuard
}

// NewSubmitReportCommand creates a command to file a field report.
func NewSubmitReportCommand(
	reportID, orderID, driverID kernel.UUID, stage order.ReportStage, notes, photoRef string,
) (SubmitReportCommand, error) {
	cmd := SubmitReportCommand{
		notes:    notes,
		photoRef: photoRef,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReportID(reportID),
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setStage(stage),
	); err != nil {
		return SubmitReportCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitReportCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReportCommandIsNotConstructed)
}

// ReportID returns the identifier the report will be stored under.
func (c SubmitReportCommand) ReportID() kernel.UUID {
	return c.reportID
}

// OrderID returns the order the report is filed against.
func (c SubmitReportCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the filing driver.
func (c SubmitReportCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Stage returns the delivery phase the report covers.
func (c SubmitReportCommand) Stage() order.ReportStage {
	return c.stage
}

// Notes returns the optional free-text notes.
func (c SubmitReportCommand) Notes() string {
	return c.notes
}

// PhotoRef returns the optional stored-photo reference.
func (c SubmitReportCommand) PhotoRef() string {
	return c.photoRef
}

func (c *SubmitReportCommand) setReportID(reportID kernel.UUID) error {
	if err := reportID.Validate(); err != nil {
		return err
	}
	c.reportID = reportID
	return nil
}

func (c *SubmitReportCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SubmitReportCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *SubmitReportCommand) setStage(stage order.ReportStage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	c.stage = stage
	return nil
}
