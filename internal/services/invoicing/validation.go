package invoicing

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"invoice-admin-backend/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	MsgCustomerRequired = "Please select a customer."
	MsgAmountPositive   = "Please enter an amount greater than $0."
	MsgStatusInvalid    = "Please select an invoice status."
)

// FormInput is the raw invoice submission. Id and date never come from the client.
type FormInput struct {
	CustomerID string `form:"customerId" json:"customerId"`
	Amount     string `form:"amount" json:"amount"`
	Status     string `form:"status" json:"status"`
}

// InvoiceInput is a FormInput that passed validation.
type InvoiceInput struct {
	CustomerID string
	Amount     decimal.Decimal
	Status     models.InvoiceStatus
	cents      int64
}

var hundred = decimal.NewFromInt(100)

// AmountInCents is the validated amount in minor units. It is always at
// least one cent.
func (in InvoiceInput) AmountInCents() int64 {
	return in.cents
}

// FieldErrors maps a form field name to its messages in rule order.
type FieldErrors map[string][]string

type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid invoice fields: " + strings.Join(names, ", ")
}

type invoiceFields struct {
	CustomerID string `field:"customerId" validate:"required"`
	Amount     int64  `field:"amount" validate:"gte=1"`
	Status     string `field:"status" validate:"oneof=pending paid"`
}

var fieldMessages = map[string]string{
	"customerId": MsgCustomerRequired,
	"amount":     MsgAmountPositive,
	"status":     MsgStatusInvalid,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("field")
	})
	return v
}

// coerceAmount turns the raw amount into a number. Anything that does not
// parse counts as zero so it fails the positivity rule instead of a type rule.
func coerceAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// toCents rounds an amount to minor units, half away from zero. Amounts
// whose cents do not fit in an int64 come back as zero.
func toCents(d decimal.Decimal) int64 {
	cents := d.Mul(hundred).Round(0)
	if !cents.BigInt().IsInt64() {
		return 0
	}
	return cents.IntPart()
}

// ValidateInvoice checks every rule and reports all failing fields at once.
// The returned error is a *ValidationError.
func ValidateInvoice(form FormInput) (InvoiceInput, error) {
	amount := coerceAmount(form.Amount)
	fields := invoiceFields{
		CustomerID: strings.TrimSpace(form.CustomerID),
		Amount:     toCents(amount),
		Status:     strings.TrimSpace(form.Status),
	}

	if err := validate.Struct(fields); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return InvoiceInput{}, err
		}
		out := FieldErrors{}
		for _, fe := range verrs {
			out[fe.Field()] = append(out[fe.Field()], fieldMessages[fe.Field()])
		}
		return InvoiceInput{}, &ValidationError{Fields: out}
	}

	return InvoiceInput{
		CustomerID: fields.CustomerID,
		Amount:     amount,
		Status:     models.InvoiceStatus(fields.Status),
		cents:      fields.Amount,
	}, nil
}
