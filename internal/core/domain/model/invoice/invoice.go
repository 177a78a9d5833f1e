package invoice

import (
	"errors"
	"fmt"
	"time"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/errs"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
	// created through the NewInvoice factory method.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")
)

// Type distinguishes platform subscription charges from customer delivery
// payments.
type Type int

const (
	// TypeUnknown is the invalid zero value.
	TypeUnknown Type = iota

	// TypeSubscription is a monthly platform charge billed to the tenant.
	TypeSubscription

	// TypeCustomerPayment is a delivery charge billed to a customer.
	TypeCustomerPayment
)

// TypeFromString parses a wire/persistence invoice type name.
func TypeFromString(s string) (Type, error) {
	switch s {
	case "subscription":
		return TypeSubscription, nil
	case "customer_payment":
		return TypeCustomerPayment, nil
	default:
		return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"invoiceType", fmt.Errorf("%q is not a valid invoice type", s))
	}
}

// String returns the wire name of the invoice type.
func (t Type) String() string {
	switch t {
	case TypeSubscription:
		return "subscription"
	case TypeCustomerPayment:
		return "customer_payment"
	default:
		return "unknown"
	}
}

// Validate checks the type is subscription or customer_payment.
func (t Type) Validate() error {
	if t != TypeSubscription && t != TypeCustomerPayment {
		return errs.NewValueIsInvalidErrorWithCause(
			"invoiceType", fmt.Errorf("%d is not a valid invoice type", t))
	}
	return nil
}

// SubscriptionDescription is the canonical description of a subscription
// invoice for a billing period key such as "2026-08". Monthly generation
// relies on it to detect periods that were already billed.
func SubscriptionDescription(period string) string {
	return "Subscription " + period
}

// Invoice is the aggregate root for one billable record: either a platform
// subscription charge or a customer delivery payment.
//
// Invoice enforces these invariants:
//   - Amount and currency are immutable after creation
//   - Paid is applied exactly once; a second confirmation is a conflict
//   - Overdue applies only to pending invoices
//   - Paid and cancelled invoices never change again
type Invoice struct {
	id          kernel.UUID
	publicID    string
	tenantID    kernel.UUID
	invoiceType Type
	status      Status
	amount      int64
	currency    string
	description string
	paymentCode string
	dueDate     time.Time
	paidAt      *time.Time
	createdAt   time.Time

	isConstructed bool
}

// NewInvoice creates a pending Invoice with validated fields. The payment
// code payload is generated by the caller (it needs merchant configuration)
// and stored verbatim.
func NewInvoice(
	id kernel.UUID,
	publicID string,
	tenantID kernel.UUID,
	invoiceType Type,
	amount int64,
	currency string,
	description string,
	paymentCode string,
	dueDate time.Time,
	createdAt time.Time,
) (*Invoice, error) {
	inv := &Invoice{
		description:   description,
		paymentCode:   paymentCode,
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setPublicID(publicID),
		inv.setTenantID(tenantID),
		inv.setType(invoiceType),
		inv.setAmount(amount),
		inv.setCurrency(currency),
		inv.setDueDate(dueDate),
		inv.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// RestoreInvoice reconstructs an Invoice from persistence, trusting the
// stored status and paid timestamp.
func RestoreInvoice(
	id kernel.UUID,
	publicID string,
	tenantID kernel.UUID,
	invoiceType Type,
	status Status,
	amount int64,
	currency string,
	description string,
	paymentCode string,
	dueDate time.Time,
	paidAt *time.Time,
	createdAt time.Time,
) (*Invoice, error) {
	inv, err := NewInvoice(id, publicID, tenantID, invoiceType, amount, currency,
		description, paymentCode, dueDate, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	inv.status = status
	inv.paidAt = paidAt
	return inv, nil
}

// Validate ensures the Invoice was created through NewInvoice.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// PublicID returns the public invoice reference, e.g. "INV-202608-000042".
func (i *Invoice) PublicID() string {
	return i.publicID
}

// TenantID returns the owning tenant.
func (i *Invoice) TenantID() kernel.UUID {
	return i.tenantID
}

// Type returns the invoice type.
func (i *Invoice) Type() Type {
	return i.invoiceType
}

// Status returns the current payment state.
func (i *Invoice) Status() Status {
	return i.status
}

// Amount returns the billed amount in whole currency units. Immutable.
func (i *Invoice) Amount() int64 {
	return i.amount
}

// Currency returns the ISO 4217 alphabetic currency code.
func (i *Invoice) Currency() string {
	return i.currency
}

// Description returns the optional description line.
func (i *Invoice) Description() string {
	return i.description
}

// PaymentCode returns the stored scannable payment code payload.
func (i *Invoice) PaymentCode() string {
	return i.paymentCode
}

// DueDate returns the payment deadline.
func (i *Invoice) DueDate() time.Time {
	return i.dueDate
}

// PaidAt returns the confirmation timestamp, or nil while unpaid.
func (i *Invoice) PaidAt() *time.Time {
	return i.paidAt
}

// CreatedAt returns the creation timestamp.
func (i *Invoice) CreatedAt() time.Time {
	return i.createdAt
}

// IsSubscription reports whether this is a platform subscription charge.
func (i *Invoice) IsSubscription() bool {
	return i.invoiceType == TypeSubscription
}

// MarkPaid confirms payment at the given time.
//
// Returns a Conflict-kind error when the invoice is already paid (the
// idempotency guard every confirmation path relies on) or when it was
// cancelled. Pending and overdue invoices both accept payment.
func (i *Invoice) MarkPaid(paidAt time.Time) error {
	switch i.status {
	case StatusPaid:
		return errs.NewConflictError(fmt.Sprintf("invoice %s is already paid", i.publicID))
	case StatusCancelled:
		return errs.NewConflictError(fmt.Sprintf("invoice %s is cancelled", i.publicID))
	}
	if paidAt.IsZero() {
		return errs.NewValueIsRequiredError("paidAt")
	}

	i.status = StatusPaid
	i.paidAt = &paidAt
	return nil
}

// MarkOverdue flags a pending invoice whose due date passed.
// Any other state yields a Conflict-kind error.
func (i *Invoice) MarkOverdue() error {
	if i.status != StatusPending {
		return errs.NewConflictError(
			fmt.Sprintf("invoice %s is %s, only pending invoices go overdue", i.publicID, i.status))
	}
	i.status = StatusOverdue
	return nil
}

// MarkCancelled voids a pending or overdue invoice.
func (i *Invoice) MarkCancelled() error {
	if i.status.IsTerminal() {
		return errs.NewConflictError(
			fmt.Sprintf("invoice %s is already %s", i.publicID, i.status))
	}
	i.status = StatusCancelled
	return nil
}

// IsPastDue reports whether the invoice is pending and its due date is
// before now.
func (i *Invoice) IsPastDue(now time.Time) bool {
	return i.status == StatusPending && i.dueDate.Before(now)
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setPublicID(publicID string) error {
	if publicID == "" {
		return errs.NewValueIsRequiredError("publicID")
	}
	i.publicID = publicID
	return nil
}

func (i *Invoice) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	i.tenantID = tenantID
	return nil
}

func (i *Invoice) setType(invoiceType Type) error {
	if err := invoiceType.Validate(); err != nil {
		return err
	}
	i.invoiceType = invoiceType
	return nil
}

func (i *Invoice) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%d is not greater than 0", amount))
	}
	i.amount = amount
	return nil
}

func (i *Invoice) setCurrency(currency string) error {
	if len(currency) != 3 {
		return errs.NewValueIsInvalidErrorWithCause(
			"currency", fmt.Errorf("%q is not a 3-letter currency code", currency))
	}
	i.currency = currency
	return nil
}

func (i *Invoice) setDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return errs.NewValueIsRequiredError("dueDate")
	}
	i.dueDate = dueDate
	return nil
}

func (i *Invoice) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	i.createdAt = createdAt
	return nil
}
