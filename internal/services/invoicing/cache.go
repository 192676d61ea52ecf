package invoicing

import (
	"context"
	"strconv"
	"sync"

	"invoice-admin-backend/internal/models"

	"golang.org/x/sync/singleflight"
)

// ListingPath is the invoices listing route; create and update redirect to it.
const ListingPath = "/dashboard/invoices"

type ListingLoader func(ctx context.Context) ([]models.InvoiceRow, error)

// ListingCache holds the last computed invoices listing until it is invalidated.
// Concurrent misses share a single load per generation.
type ListingCache struct {
	load  ListingLoader
	group singleflight.Group

	mu         sync.Mutex
	rows       []models.InvoiceRow
	valid      bool
	generation uint64
}

func NewListingCache(load ListingLoader) *ListingCache {
	return &ListingCache{load: load}
}

func (c *ListingCache) Get(ctx context.Context) ([]models.InvoiceRow, error) {
	c.mu.Lock()
	if c.valid {
		rows := c.rows
		c.mu.Unlock()
		return rows, nil
	}
	gen := c.generation
	c.mu.Unlock()

	// Waiters share this load, so it must outlive the caller that started it.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do(strconv.FormatUint(gen, 10), func() (interface{}, error) {
		rows, err := c.load(loadCtx)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []models.InvoiceRow{}
		}
		c.mu.Lock()
		// An invalidation during the load makes this result stale; hand it
		// to the callers that asked for it but do not keep it.
		if c.generation == gen {
			c.rows = rows
			c.valid = true
		}
		c.mu.Unlock()
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.InvoiceRow), nil
}

// Invalidate marks the cached listing stale so the next Get reloads it.
func (c *ListingCache) Invalidate() {
	c.mu.Lock()
	c.generation++
	c.valid = false
	c.rows = nil
	c.mu.Unlock()
}
