// Package orderrepo persists order aggregates with their stops, and appends
// field reports, mapping between domain entities and database rows.
package orderrepo

import (
	"time"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate. Statuses are stored
// as their wire names so read-side queries and operators see plain text.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingID     string     `gorm:"type:varchar(32);uniqueIndex"`
	ServiceID      uuid.UUID  `gorm:"type:uuid;index"`
	DriverID       *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID      *uuid.UUID `gorm:"type:uuid"`
	Status         string     `gorm:"type:varchar(32);index"`
	OrdererName    string
	OrdererPhone   string
	RecipientName  string
	RecipientPhone string
	Notes          string
	EstimatedCost  int64
	CreatedAt      time.Time
	Stops          []StopDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// StopDTO is the database row for one route stop.
type StopDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Sequence  int
	StopType  string `gorm:"type:varchar(16)"`
	Address   string
	Lat       float64
	Lng       float64
	Completed bool
}

// TableName overrides GORM's default naming to use "order_stops".
func (StopDTO) TableName() string {
	return "order_stops"
}

// ReportDTO is the database row for a driver field report. Reports are
// append-only and never loaded back into the aggregate.
type ReportDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	DriverID uuid.UUID `gorm:"type:uuid"`
	Stage    string    `gorm:"type:varchar(32)"`
	Notes    string
	PhotoRef string
	FiledAt  time.Time
}

// TableName overrides GORM's default naming to use "order_reports".
func (ReportDTO) TableName() string {
	return "order_reports"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID, vehicleID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}
	if id := aggregate.Vehicle(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	orderID := aggregate.ID().Bytes()
	stops := make([]StopDTO, 0, len(aggregate.Stops()))
	for _, stop := range aggregate.Stops() {
		stops = append(stops, StopDTO{
			ID:        stop.ID().Bytes(),
			OrderID:   orderID,
			Sequence:  stop.Sequence(),
			StopType:  stop.Type().String(),
			Address:   stop.Address(),
			Lat:       stop.Point().Lat(),
			Lng:       stop.Point().Lng(),
			Completed: stop.IsCompleted(),
		})
	}

	return OrderDTO{
		ID:             orderID,
		TrackingID:     aggregate.TrackingID(),
		ServiceID:      aggregate.ServiceID().Bytes(),
		DriverID:       driverID,
		VehicleID:      vehicleID,
		Status:         aggregate.Status().String(),
		OrdererName:    aggregate.Orderer().Name,
		OrdererPhone:   aggregate.Orderer().Phone,
		RecipientName:  aggregate.Recipient().Name,
		RecipientPhone: aggregate.Recipient().Phone,
		Notes:          aggregate.Notes(),
		EstimatedCost:  aggregate.EstimatedCost(),
		CreatedAt:      aggregate.CreatedAt(),
		Stops:          stops,
	}
}

func reportFromDomain(report *order.Report) ReportDTO {
	return ReportDTO{
		ID:       report.ID().Bytes(),
		OrderID:  report.OrderID().Bytes(),
		DriverID: report.DriverID().Bytes(),
		Stage:    report.Stage().String(),
		Notes:    report.Notes(),
		PhotoRef: report.PhotoRef(),
		FiledAt:  report.FiledAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	var driverID, vehicleID *kernel.UUID
	if dto.DriverID != nil {
		dID, dErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if dErr != nil {
			return nil, dErr
		}
		driverID = &dID
	}
	if dto.VehicleID != nil {
		vID, vErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vErr != nil {
			return nil, vErr
		}
		vehicleID = &vID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	stops := make([]*order.Stop, 0, len(dto.Stops))
	for _, stopDTO := range dto.Stops {
		stop, stopErr := stopToDomain(stopDTO)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	return order.RestoreOrder(
		id,
		dto.TrackingID,
		serviceID,
		order.Contact{Name: dto.OrdererName, Phone: dto.OrdererPhone},
		order.Contact{Name: dto.RecipientName, Phone: dto.RecipientPhone},
		dto.EstimatedCost,
		dto.Notes,
		status,
		stops,
		driverID,
		vehicleID,
		dto.CreatedAt,
	)
}

func stopToDomain(dto StopDTO) (*order.Stop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	stopType, err := order.StopTypeFromString(dto.StopType)
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	status := order.StopPending
	if dto.Completed {
		status = order.StopCompleted
	}

	return order.RestoreStop(id, dto.Sequence, stopType, dto.Address, point, status)
}
