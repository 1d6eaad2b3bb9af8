package catalog

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"developerhorizon/internal/domain"
)

type stubFetcher struct {
	products [][]domain.Product
	errs     []error
	calls    int
}

func (s *stubFetcher) Products(_ context.Context) ([]domain.Product, error) {
	idx := s.calls
	s.calls++
	var products []domain.Product
	var err error
	if idx < len(s.products) {
		products = s.products[idx]
	}
	if idx < len(s.errs) {
		err = s.errs[idx]
	}
	return products, err
}

type blankError struct{}

func (blankError) Error() string { return "" }

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestFetchSuccess(t *testing.T) {
	fetcher := &stubFetcher{products: [][]domain.Product{{{ID: "p1", Title: "Tee"}}}}
	s := NewStore(fetcher, testLogger())

	if s.Status() != StatusIdle {
		t.Fatalf("expected idle, got %s", s.Status())
	}
	s.Fetch(context.Background())

	if s.Status() != StatusSucceeded {
		t.Fatalf("expected succeeded, got %s", s.Status())
	}
	if got := s.Products(); len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("unexpected products %+v", got)
	}
	if s.Error() != "" {
		t.Fatalf("expected no error, got %q", s.Error())
	}
}

func TestFetchNotReenteredAfterSuccess(t *testing.T) {
	fetcher := &stubFetcher{products: [][]domain.Product{{{ID: "p1"}}}}
	s := NewStore(fetcher, testLogger())

	s.Fetch(context.Background())
	s.Fetch(context.Background())

	if fetcher.calls != 1 {
		t.Fatalf("expected one upstream fetch, got %d", fetcher.calls)
	}
}

func TestFetchFailureRecordsErrorAndKeepsList(t *testing.T) {
	fetcher := &stubFetcher{errs: []error{errors.New("upstream down")}}
	s := NewStore(fetcher, testLogger())

	s.Fetch(context.Background())

	if s.Status() != StatusFailed {
		t.Fatalf("expected failed, got %s", s.Status())
	}
	if s.Error() != "upstream down" {
		t.Fatalf("unexpected error %q", s.Error())
	}
	if len(s.Products()) != 0 {
		t.Fatalf("list must be unchanged from before the fetch")
	}
}

func TestFetchRetriesFromFailed(t *testing.T) {
	fetcher := &stubFetcher{
		products: [][]domain.Product{nil, {{ID: "p1"}}},
		errs:     []error{errors.New("boom"), nil},
	}
	s := NewStore(fetcher, testLogger())

	s.Fetch(context.Background())
	if s.Status() != StatusFailed {
		t.Fatalf("expected failed, got %s", s.Status())
	}

	s.Fetch(context.Background())
	if s.Status() != StatusSucceeded {
		t.Fatalf("expected succeeded after retry, got %s", s.Status())
	}
	if s.Error() != "" {
		t.Fatalf("success must clear the prior error, got %q", s.Error())
	}
}

func TestFetchBlankErrorUsesDefaultMessage(t *testing.T) {
	fetcher := &stubFetcher{errs: []error{blankError{}}}
	s := NewStore(fetcher, testLogger())

	s.Fetch(context.Background())
	if s.Error() != DefaultFetchError {
		t.Fatalf("expected default message, got %q", s.Error())
	}
}

func TestProductByID(t *testing.T) {
	fetcher := &stubFetcher{products: [][]domain.Product{{{ID: "p1"}, {ID: "p2"}}}}
	s := NewStore(fetcher, testLogger())
	s.Fetch(context.Background())

	if p := s.ProductByID("p2"); p == nil || p.ID != "p2" {
		t.Fatalf("expected p2, got %+v", p)
	}
	if p := s.ProductByID("nope"); p != nil {
		t.Fatalf("expected nil for unknown id")
	}
}

func TestFilterProducts(t *testing.T) {
	products := []domain.Product{{
		ID: "p1",
		Options: []domain.ProductOption{
			{
				Name: "Colors", Type: "color",
				Values: []domain.OptionValue{{ID: 10, Title: "A"}, {ID: 11, Title: "B"}},
			},
			{
				Name: "Sizes", Type: "size",
				Values: []domain.OptionValue{{ID: 20, Title: "XL"}},
			},
		},
		Variants: []domain.Variant{
			{ID: 1, IsEnabled: true, Options: []int{10, 20}},
			{ID: 2, IsEnabled: false, Options: []int{11, 20}},
			{ID: 3, IsEnabled: true, Options: []int{10, 20}},
		},
	}}

	filtered := FilterProducts(products)
	if len(filtered) != 1 {
		t.Fatalf("expected one product, got %d", len(filtered))
	}
	p := filtered[0]

	if len(p.Variants) != 2 {
		t.Fatalf("expected both enabled variants kept, got %d", len(p.Variants))
	}
	for _, v := range p.Variants {
		if !v.IsEnabled {
			t.Fatalf("disabled variant survived: %+v", v)
		}
	}

	colors := p.Options[0].Values
	if len(colors) != 1 || colors[0].Title != "A" {
		t.Fatalf("expected color values restricted to {A}, got %+v", colors)
	}
	sizes := p.Options[1].Values
	if len(sizes) != 1 {
		t.Fatalf("non-color options must be untouched, got %+v", sizes)
	}
}
