// Package catalog holds the fetched product list behind a small fetch state
// machine: idle -> loading -> succeeded | failed. A fetch is re-entered only
// from idle or failed, never while one is in flight or after success.
package catalog

import (
	"context"
	"log"
	"sync"

	"developerhorizon/internal/domain"
)

// Status is the catalog fetch state.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// DefaultFetchError is the user-facing message recorded when the underlying
// failure carries no message of its own.
const DefaultFetchError = "failed to fetch products"

// Fetcher retrieves the raw product list from upstream.
type Fetcher interface {
	Products(ctx context.Context) ([]domain.Product, error)
}

// Store owns the fetched catalog. The list is replaced wholesale on a
// successful fetch and left untouched by a failed one.
type Store struct {
	mu       sync.Mutex
	fetcher  Fetcher
	logger   *log.Logger
	status   Status
	products []domain.Product
	errMsg   string
}

func NewStore(fetcher Fetcher, logger *log.Logger) *Store {
	return &Store{
		fetcher: fetcher,
		logger:  logger,
		status:  StatusIdle,
	}
}

// Fetch runs one catalog fetch if the store is idle or failed. Calls while
// loading or after success return immediately, so a consumer can trigger it
// opportunistically without spawning duplicate in-flight fetches.
func (s *Store) Fetch(ctx context.Context) {
	s.mu.Lock()
	if s.status == StatusLoading || s.status == StatusSucceeded {
		s.mu.Unlock()
		return
	}
	s.status = StatusLoading
	s.mu.Unlock()

	products, err := s.fetcher.Products(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.errMsg = err.Error()
		if s.errMsg == "" {
			s.errMsg = DefaultFetchError
		}
		s.logger.Printf("catalog fetch failed: %v", err)
		return
	}
	s.status = StatusSucceeded
	s.errMsg = ""
	s.products = FilterProducts(products)
}

// Status returns the current fetch state.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Error returns the recorded fetch error message, if any.
func (s *Store) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Products returns the current product list.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID returns the product with the given id, or nil.
func (s *Store) ProductByID(id string) *domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p
		}
	}
	return nil
}

// FilterProducts keeps only enabled variants per product and restricts each
// color-type option's values to color ids actually used by a remaining
// enabled variant. Non-color options are untouched.
func FilterProducts(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		enabled := make([]domain.Variant, 0, len(p.Variants))
		usedOptionIDs := make(map[int]struct{})
		for _, v := range p.Variants {
			if !v.IsEnabled {
				continue
			}
			enabled = append(enabled, v)
			for _, id := range v.Options {
				usedOptionIDs[id] = struct{}{}
			}
		}

		options := make([]domain.ProductOption, 0, len(p.Options))
		for _, opt := range p.Options {
			if opt.Type != "color" {
				options = append(options, opt)
				continue
			}
			values := make([]domain.OptionValue, 0, len(opt.Values))
			for _, val := range opt.Values {
				if _, ok := usedOptionIDs[val.ID]; ok {
					values = append(values, val)
				}
			}
			opt.Values = values
			options = append(options, opt)
		}

		p.Variants = enabled
		p.Options = options
		out = append(out, p)
	}
	return out
}
