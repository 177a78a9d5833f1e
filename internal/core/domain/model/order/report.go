package order

import (
	"errors"
	"fmt"
	"time"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/errs"
)

// ErrReportIsNotConstructed is returned when a Report instance was not
// created through the NewReport factory method.
var ErrReportIsNotConstructed = errors.New("Report must be created via NewReport constructor")

// ReportStage identifies which phase of the delivery a field report covers.
type ReportStage int

const (
	// ReportStageUnknown is the invalid zero value.
	ReportStageUnknown ReportStage = iota

	// ReportStagePickup is filed when the driver collects the goods.
	ReportStagePickup

	// ReportStageTransitUpdate is an en-route progress report.
	ReportStageTransitUpdate

	// ReportStageDropoff is filed on final delivery. Submitting a dropoff
	// report also flips the order to Delivered.
	ReportStageDropoff
)

// ReportStageFromString parses a wire/persistence report stage name.
func ReportStageFromString(s string) (ReportStage, error) {
	switch s {
	case "pickup":
		return ReportStagePickup, nil
	case "transit_update":
		return ReportStageTransitUpdate, nil
	case "dropoff":
		return ReportStageDropoff, nil
	default:
		return ReportStageUnknown, errs.NewValueIsInvalidErrorWithCause(
			"stage", fmt.Errorf("%q is not a valid report stage", s))
	}
}

// String returns the wire name of the stage.
func (r ReportStage) String() string {
	switch r {
	case ReportStagePickup:
		return "pickup"
	case ReportStageTransitUpdate:
		return "transit_update"
	case ReportStageDropoff:
		return "dropoff"
	default:
		return "unknown"
	}
}

// Validate checks the stage is one of the defined phases.
func (r ReportStage) Validate() error {
	switch r {
	case ReportStagePickup, ReportStageTransitUpdate, ReportStageDropoff:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"stage", fmt.Errorf("%d is not a valid report stage", r))
	}
}

// Report is a field report filed by the assigned driver against an order.
// Notes and the photo reference are optional.
type Report struct {
	id       kernel.UUID
	orderID  kernel.UUID
	driverID kernel.UUID
	stage    ReportStage
	notes    string
	photoRef string
	filedAt  time.Time

	isConstructed bool
}

// NewReport creates a validated Report.
func NewReport(
	id, orderID, driverID kernel.UUID, stage ReportStage, notes, photoRef string, filedAt time.Time,
) (*Report, error) {
	report := &Report{
		notes:         notes,
		photoRef:      photoRef,
		isConstructed: true,
	}

	if err := errors.Join(
		report.setID(id),
		report.setOrderID(orderID),
		report.setDriverID(driverID),
		report.setStage(stage),
		report.setFiledAt(filedAt),
	); err != nil {
		return nil, err
	}

	return report, nil
}

// Validate ensures the Report was created through NewReport.
func (r *Report) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReportIsNotConstructed
	}
	return nil
}

// ID returns the report's unique identifier.
func (r *Report) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order the report was filed against.
func (r *Report) OrderID() kernel.UUID {
	return r.orderID
}

// DriverID returns the driver who filed the report.
func (r *Report) DriverID() kernel.UUID {
	return r.driverID
}

// Stage returns the delivery phase the report covers.
func (r *Report) Stage() ReportStage {
	return r.stage
}

// Notes returns the optional free-text notes.
func (r *Report) Notes() string {
	return r.notes
}

// PhotoRef returns the optional stored-photo reference.
func (r *Report) PhotoRef() string {
	return r.photoRef
}

// FiledAt returns the report timestamp.
func (r *Report) FiledAt() time.Time {
	return r.filedAt
}

func (r *Report) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Report) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.orderID = id
	return nil
}

func (r *Report) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.driverID = id
	return nil
}

func (r *Report) setStage(stage ReportStage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	r.stage = stage
	return nil
}

func (r *Report) setFiledAt(filedAt time.Time) error {
	if filedAt.IsZero() {
		return errs.NewValueIsRequiredError("filedAt")
	}
	r.filedAt = filedAt
	return nil
}
