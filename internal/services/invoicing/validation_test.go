package invoicing

import (
	"errors"
	"testing"

	"invoice-admin-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrorsOf(t *testing.T, err error) FieldErrors {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Fields
}

func TestValidateInvoiceValid(t *testing.T) {
	in, err := ValidateInvoice(FormInput{CustomerID: "c1", Amount: "10.50", Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, "c1", in.CustomerID)
	assert.Equal(t, models.InvoiceStatusPending, in.Status)
	assert.EqualValues(t, 1050, in.AmountInCents())
}

func TestValidateInvoiceAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{"zero", "0"},
		{"zero decimal", "0.00"},
		{"negative", "-5"},
		{"empty", ""},
		{"blank", "   "},
		{"not a number", "abc"},
		{"rounds to zero cents", "0.004"},
		{"cents past int64", "92233720368547758.08"},
		{"huge exponent", "1e30"},
		{"huge negative", "-1e30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateInvoice(FormInput{CustomerID: "c1", Amount: tt.amount, Status: "paid"})
			fields := fieldErrorsOf(t, err)
			assert.Equal(t, FieldErrors{"amount": {MsgAmountPositive}}, fields)
		})
	}
}

func TestValidateInvoiceStatus(t *testing.T) {
	for _, status := range []string{"", "PAID", "draft", "overdue", "pending "} {
		t.Run(status, func(t *testing.T) {
			_, err := ValidateInvoice(FormInput{CustomerID: "c1", Amount: "1", Status: status})
			if status == "pending " {
				// surrounding whitespace is trimmed
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, FieldErrors{"status": {MsgStatusInvalid}}, fieldErrorsOf(t, err))
		})
	}
}

func TestValidateInvoiceCustomer(t *testing.T) {
	for _, id := range []string{"", "  "} {
		_, err := ValidateInvoice(FormInput{CustomerID: id, Amount: "1", Status: "paid"})
		assert.Equal(t, FieldErrors{"customerId": {MsgCustomerRequired}}, fieldErrorsOf(t, err))
	}
}

func TestValidateInvoiceCollectsAllFailures(t *testing.T) {
	_, err := ValidateInvoice(FormInput{})
	assert.Equal(t, FieldErrors{
		"customerId": {MsgCustomerRequired},
		"amount":     {MsgAmountPositive},
		"status":     {MsgStatusInvalid},
	}, fieldErrorsOf(t, err))
	assert.EqualError(t, err, "invalid invoice fields: amount, customerId, status")
}

func TestAmountInCents(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"5.00", 500},
		{"0.1", 10},
		{"19.99", 1999},
		{"1e2", 10000},
		{"10.505", 1051},
		{" 7 ", 700},
		{"0.005", 1},
		{"0.01", 1},
		{"92233720368547758.07", 9223372036854775807},
	}
	for _, tt := range tests {
		in, err := ValidateInvoice(FormInput{CustomerID: "c1", Amount: tt.amount, Status: "paid"})
		require.NoError(t, err, tt.amount)
		assert.Equal(t, tt.want, in.AmountInCents(), tt.amount)
	}
}
