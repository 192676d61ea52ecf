package invoicing

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"invoice-admin-backend/internal/models"

	"github.com/google/uuid"
)

const (
	MsgCreateMissingFields = "Missing fields. Failed to create invoice"
	MsgUpdateMissingFields = "Missing fields. Failed to update invoice"
	MsgCreateFailed        = "Database Error: Failed to Create Invoice."
	MsgUpdateFailed        = "Database Error: Failed to Update Invoice."
	MsgDeleteFailed        = "Database Error: Failed to Delete Invoice."
)

type InvoiceStore interface {
	Insert(ctx context.Context, inv *models.Invoice) error
	Update(ctx context.Context, id, customerID string, amount int64, status models.InvoiceStatus) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
}

// State is what a form re-renders with after a rejected submission.
type State struct {
	Errors  FieldErrors `json:"errors,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Outcome is the result of one invoice action. Exactly one of State or
// Redirect is set for create and update; delete sets State only on failure.
// Err carries the store error behind a database State.
type Outcome struct {
	State    *State
	Redirect string
	Err      error
}

type InvoiceService struct {
	store InvoiceStore
	cache *ListingCache
	now   func() time.Time
	newID func() string
}

func NewInvoiceService(store InvoiceStore, cache *ListingCache) *InvoiceService {
	return &InvoiceService{
		store: store,
		cache: cache,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *InvoiceService) Create(ctx context.Context, form FormInput) Outcome {
	input, err := ValidateInvoice(form)
	if err != nil {
		return rejected(err, MsgCreateMissingFields)
	}

	inv := &models.Invoice{
		ID:         s.newID(),
		CustomerID: input.CustomerID,
		Amount:     input.AmountInCents(),
		Status:     input.Status,
		Date:       s.now().UTC().Format(time.DateOnly),
	}
	err = s.store.Insert(ctx, inv)
	s.cache.Invalidate()
	if err != nil {
		slog.ErrorContext(ctx, "create invoice failed", "customer_id", inv.CustomerID, "error", err)
		return Outcome{State: &State{Message: MsgCreateFailed}, Err: err}
	}

	slog.InfoContext(ctx, "invoice created", "id", inv.ID, "amount", inv.Amount, "status", inv.Status)
	return Outcome{Redirect: ListingPath}
}

// Update rewrites customer, amount and status of the invoice; the date stays.
// An id that matches nothing is not reported.
func (s *InvoiceService) Update(ctx context.Context, id string, form FormInput) Outcome {
	input, err := ValidateInvoice(form)
	if err != nil {
		return rejected(err, MsgUpdateMissingFields)
	}

	n, err := s.store.Update(ctx, id, input.CustomerID, input.AmountInCents(), input.Status)
	s.cache.Invalidate()
	if err != nil {
		slog.ErrorContext(ctx, "update invoice failed", "id", id, "error", err)
		return Outcome{State: &State{Message: MsgUpdateFailed}, Err: err}
	}
	if n == 0 {
		slog.WarnContext(ctx, "update matched no invoice", "id", id)
	}
	return Outcome{Redirect: ListingPath}
}

// Delete removes the invoice. The caller is already on the listing, so no redirect.
func (s *InvoiceService) Delete(ctx context.Context, id string) Outcome {
	n, err := s.store.Delete(ctx, id)
	s.cache.Invalidate()
	if err != nil {
		slog.ErrorContext(ctx, "delete invoice failed", "id", id, "error", err)
		return Outcome{State: &State{Message: MsgDeleteFailed}, Err: err}
	}
	if n == 0 {
		slog.DebugContext(ctx, "delete matched no invoice", "id", id)
	}
	return Outcome{}
}

// Get reads one invoice to prefill the edit form. It bypasses the listing cache.
func (s *InvoiceService) Get(ctx context.Context, id string) (*models.Invoice, error) {
	return s.store.GetByID(ctx, id)
}

// List returns the invoices listing, served from cache when it is fresh.
func (s *InvoiceService) List(ctx context.Context) ([]models.InvoiceRow, error) {
	return s.cache.Get(ctx)
}

func rejected(err error, message string) Outcome {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return Outcome{State: &State{Errors: verr.Fields, Message: message}}
	}
	return Outcome{State: &State{Message: message}, Err: err}
}
