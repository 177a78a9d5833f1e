package commands

import (
	"errors"
	"time"

	"kirim/internal/core/domain/model/invoice"
	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/guard"
)

var (
	ErrCreateInvoiceCommandIsNotConstructed = errors.New(
		"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
	)
	ErrInvoiceAmountIsInvalid  = errors.New("invoice amount must be greater than 0")
	ErrInvoiceDueDateIsInvalid = errors.New("invoice due date is required")
)

// CreateInvoiceCommand represents a request to issue an invoice against a
// tenant, either for a subscription period or a customer payment.
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID   kernel.UUID
	tenantID    kernel.UUID
	invoiceType invoice.Type
	amount      int64
	currency    string
	description string
	dueDate     time.Time

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to issue an invoice.
func NewCreateInvoiceCommand(
	invoiceID, tenantID kernel.UUID, invoiceType invoice.Type,
	amount int64, currency, description string, dueDate time.Time,
) (CreateInvoiceCommand, error) {
	cmd := CreateInvoiceCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setTenantID(tenantID),
		cmd.setType(invoiceType),
		cmd.setAmount(amount),
		cmd.setCurrency(currency),
		cmd.setDueDate(dueDate),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the identifier the invoice will be stored under.
func (c CreateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// TenantID returns the billed tenant.
func (c CreateInvoiceCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Type returns the invoice type.
func (c CreateInvoiceCommand) Type() invoice.Type {
	return c.invoiceType
}

// Amount returns the billed amount in whole currency units.
func (c CreateInvoiceCommand) Amount() int64 {
	return c.amount
}

// Currency returns the ISO 4217 alphabetic currency code.
func (c CreateInvoiceCommand) Currency() string {
	return c.currency
}

// Description returns the optional invoice description.
func (c CreateInvoiceCommand) Description() string {
	return c.description
}

// DueDate returns when the invoice falls due.
func (c CreateInvoiceCommand) DueDate() time.Time {
	return c.dueDate
}

func (c *CreateInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}
	c.invoiceID = invoiceID
	return nil
}

func (c *CreateInvoiceCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

func (c *CreateInvoiceCommand) setType(invoiceType invoice.Type) error {
	if err := invoiceType.Validate(); err != nil {
		return err
	}
	c.invoiceType = invoiceType
	return nil
}

func (c *CreateInvoiceCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return ErrInvoiceAmountIsInvalid
	}
	c.amount = amount
	return nil
}

func (c *CreateInvoiceCommand) setCurrency(currency string) error {
	if len(currency) != 3 {
		return errors.New("currency must be a 3-letter ISO 4217 code")
	}
	c.currency = currency
	return nil
}

func (c *CreateInvoiceCommand) setDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return ErrInvoiceDueDateIsInvalid
	}
	c.dueDate = dueDate
	return nil
}
