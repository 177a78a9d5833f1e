// Package postgres provides the GORM-based Unit of Work implementation.
// A unit of work owns one database transaction; every repository handed out
// while the transaction is open executes inside it, so an order transition,
// its stop updates, and its audit record commit or roll back together.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation gets a fresh instance from the factory; instances
// are not safe for concurrent use.
package postgres

import (
	"context"

	"kirim/internal/adapters/out/postgres/auditrepo"
	"kirim/internal/adapters/out/postgres/invoicerepo"
	"kirim/internal/adapters/out/postgres/orderrepo"
	"kirim/internal/adapters/out/postgres/servicerepo"
	"kirim/internal/adapters/out/postgres/tenantrepo"
	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories it hands out, and tracks the aggregates written through them.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a new database transaction. Calling Begin again on an open
// unit of work is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns an error if no transaction is active or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns an error if no transaction is active or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// InvoiceRepository returns an invoice repository bound to the current
// transaction.
func (uow *GormUnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	return invoicerepo.NewGormInvoiceRepository(uow.conn(), uow)
}

// TenantRepository returns a tenant repository bound to the current
// transaction.
func (uow *GormUnitOfWork) TenantRepository() ports.TenantRepository {
	return tenantrepo.NewGormTenantRepository(uow.conn(), uow)
}

// DriverRepository returns a driver repository bound to the current
// transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return tenantrepo.NewGormDriverRepository(uow.conn(), uow)
}

// InviteRepository returns an invite repository bound to the current
// transaction.
func (uow *GormUnitOfWork) InviteRepository() ports.InviteRepository {
	return tenantrepo.NewGormInviteRepository(uow.conn(), uow)
}

// ServiceRepository returns a catalog read repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ServiceRepository() ports.ServiceRepository {
	return servicerepo.NewGormServiceRepository(uow.conn())
}

// AuditRepository returns an audit repository bound to the current
// transaction.
func (uow *GormUnitOfWork) AuditRepository() ports.AuditRepository {
	return auditrepo.NewGormAuditRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call it on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
