// Package paycode generates scannable EMV-style payment code payloads.
// A payload is a sequence of tag-length-value fields terminated by a fixed
// checksum trailer: the checksum tag, the literal length "04", and four
// uppercase hex digits of CRC16/CCITT-FALSE computed over everything that
// precedes them (including the trailer tag and length).
//
// Given identical inputs the generated payload is byte-for-byte identical,
// so a stored payload can be re-derived and verified at any time.
package paycode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	tagPayloadFormat   = "00"
	tagInitiation      = "01"
	tagMerchantAccount = "26"
	tagCategoryCode    = "52"
	tagCurrency        = "53"
	tagAmount          = "54"
	tagCountry         = "58"
	tagMerchantName    = "59"
	tagMerchantCity    = "60"
	tagAdditionalData  = "62"

	subTagDomain     = "00"
	subTagInvoiceRef = "01"
	subTagBillNumber = "01"
	subTagPurpose    = "08"

	payloadFormatValue = "01"
	initiationDynamic  = "12"
	categoryTransport  = "4215"

	// ChecksumTrailer is the checksum tag plus its fixed length digits.
	// The CRC is computed over the payload with this trailer appended.
	ChecksumTrailer = "6304"
)

// ErrValueTooLong is returned when a field value exceeds the two-digit
// decimal length an EMV TLV field can carry.
var ErrValueTooLong = errors.New("paycode: field value exceeds 99 characters")

// Code holds the inputs of a payment code payload.
type Code struct {
	// InvoiceRef is the public invoice identifier embedded in the code.
	InvoiceRef string

	// MerchantName identifies the payee shown by scanning apps.
	MerchantName string

	// MerchantCity is the payee city field.
	MerchantCity string

	// CurrencyNumeric is the ISO 4217 numeric currency code, e.g. "360".
	CurrencyNumeric string

	// Amount is the invoice amount in whole currency units.
	Amount int64

	// Description is an optional free-text purpose line.
	Description string
}

// Payload builds the complete payment code string including the checksum
// trailer. The output is deterministic for identical inputs.
func (c Code) Payload() (string, error) {
	account, err := template(
		field{subTagDomain, "id.kirim.pay"},
		field{subTagInvoiceRef, c.InvoiceRef},
	)
	if err != nil {
		return "", err
	}

	fields := []field{
		{tagPayloadFormat, payloadFormatValue},
		{tagInitiation, initiationDynamic},
		{tagMerchantAccount, account},
		{tagCategoryCode, categoryTransport},
		{tagCurrency, c.CurrencyNumeric},
		{tagAmount, strconv.FormatInt(c.Amount, 10)},
		{tagCountry, "ID"},
		{tagMerchantName, c.MerchantName},
		{tagMerchantCity, c.MerchantCity},
	}

	additional := []field{{subTagBillNumber, c.InvoiceRef}}
	if c.Description != "" {
		additional = append(additional, field{subTagPurpose, c.Description})
	}
	extra, err := template(additional...)
	if err != nil {
		return "", err
	}
	fields = append(fields, field{tagAdditionalData, extra})

	payload, err := template(fields...)
	if err != nil {
		return "", err
	}

	return payload + ChecksumTrailer + Checksum(payload+ChecksumTrailer), nil
}

// Checksum computes the 4-digit uppercase hex CRC16/CCITT-FALSE of data.
func Checksum(data string) string {
	return fmt.Sprintf("%04X", crc16CCITTFalse([]byte(data)))
}

// Verify reports whether payload carries a correct checksum trailer.
func Verify(payload string) bool {
	idx := strings.LastIndex(payload, ChecksumTrailer)
	if idx < 0 || len(payload)-idx != len(ChecksumTrailer)+4 {
		return false
	}
	body := payload[:idx+len(ChecksumTrailer)]
	return payload[idx+len(ChecksumTrailer):] == Checksum(body)
}

type field struct {
	tag   string
	value string
}

func template(fields ...field) (string, error) {
	var sb strings.Builder
	for _, f := range fields {
		if len(f.value) > 99 {
			return "", fmt.Errorf("%w: tag %s", ErrValueTooLong, f.tag)
		}
		sb.WriteString(f.tag)
		sb.WriteString(fmt.Sprintf("%02d", len(f.value)))
		sb.WriteString(f.value)
	}
	return sb.String(), nil
}

// crc16CCITTFalse implements CRC-16/CCITT-FALSE: polynomial 0x1021,
// initial value 0xFFFF, no reflection, no final xor.
func crc16CCITTFalse(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
