package services

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"

	"kirim/internal/core/domain/model/invoice"
	"kirim/internal/pkg/errs"
)

// invoiceRefPrefix is prepended to an invoice's public identifier when it is
// sent to the payment gateway as the transaction's order reference.
const invoiceRefPrefix = "invoice_"

// PaymentNotification is the payload of a payment-gateway webhook about a
// transaction's state change. All fields arrive as strings on the wire.
type PaymentNotification struct {
	TransactionID     string
	TransactionTime   string
	TransactionStatus string
	StatusCode        string
	GrossAmount       string
	PaymentType       string
	OrderRef          string
	FraudStatus       string
	SignatureKey      string
}

// Signature computes the expected notification signature: the hex-encoded
// SHA-512 of the order reference, status code, gross amount and the
// merchant's server key, concatenated in that order.
func (n PaymentNotification) Signature(serverKey string) string {
	sum := sha512.Sum512([]byte(n.OrderRef + n.StatusCode + n.GrossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// VerifySignature checks the notification's signature key against the one
// derived from the merchant's server key. Returns a value-is-invalid error
// on mismatch so callers can reject the notification as unauthenticated.
func (n PaymentNotification) VerifySignature(serverKey string) error {
	if n.SignatureKey != n.Signature(serverKey) {
		return errs.NewValueIsInvalidError("signatureKey")
	}
	return nil
}

// InvoicePublicID extracts the invoice public identifier from the order
// reference the gateway echoes back.
func (n PaymentNotification) InvoicePublicID() (string, error) {
	publicID, ok := strings.CutPrefix(n.OrderRef, invoiceRefPrefix)
	if !ok || publicID == "" {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"orderRef", fmt.Errorf("expected %q prefix, got %q", invoiceRefPrefix, n.OrderRef))
	}
	return publicID, nil
}

// TargetStatus maps the gateway's transaction and fraud statuses to the
// invoice status the notification calls for.
//
// Mapping:
//   - capture or settlement, with fraud status "accept" or absent: paid
//   - deny, cancel, expire or failure: cancelled
//   - pending, or anything unrecognized: pending (no change for an
//     already-pending invoice; callers treat it as a no-op)
func (n PaymentNotification) TargetStatus() invoice.Status {
	switch n.TransactionStatus {
	case "capture", "settlement":
		if n.FraudStatus == "" || n.FraudStatus == "accept" {
			return invoice.StatusPaid
		}
		return invoice.StatusPending
	case "deny", "cancel", "expire", "failure":
		return invoice.StatusCancelled
	default:
		return invoice.StatusPending
	}
}
