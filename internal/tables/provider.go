// Package tables supplies the reference tax datasets consumed by the
// calculation engine. A Provider loads each requested year at most once
// and hands out the same immutable snapshot to every caller afterwards.
package tables

import (
	"fmt"
	"sync"

	"github.com/rothplan/roth-planner/internal/domain"
)

// Loader fetches the reference tables for a tax year. Implementations
// must return fully populated, never-mutated datasets.
type Loader interface {
	Load(year int) (*domain.TaxTables, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(year int) (*domain.TaxTables, error)

func (f LoaderFunc) Load(year int) (*domain.TaxTables, error) {
	return f(year)
}

// Provider caches loaded tables per year. Safe for concurrent use; the
// returned *TaxTables must be treated as read-only.
type Provider struct {
	mu     sync.Mutex
	loader Loader
	cache  map[int]*domain.TaxTables
}

// NewProvider creates a Provider backed by the given loader.
func NewProvider(loader Loader) *Provider {
	return &Provider{
		loader: loader,
		cache:  make(map[int]*domain.TaxTables),
	}
}

// NewDefaultProvider creates a Provider serving the built-in datasets.
func NewDefaultProvider() *Provider {
	return NewProvider(LoaderFunc(func(year int) (*domain.TaxTables, error) {
		if year == 2025 {
			return Tables2025(), nil
		}
		return nil, fmt.Errorf("no built-in tax tables for year %d", year)
	}))
}

// NewStaticProvider creates a Provider pre-seeded with the given
// datasets and no backing loader.
func NewStaticProvider(tables ...*domain.TaxTables) *Provider {
	p := &Provider{cache: make(map[int]*domain.TaxTables)}
	for _, t := range tables {
		p.cache[t.Year] = t
	}
	return p
}

// TablesFor returns the reference tables for the given tax year,
// loading them on first use.
func (p *Provider) TablesFor(year int) (*domain.TaxTables, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if t, ok := p.cache[year]; ok {
		return t, nil
	}
	if p.loader == nil {
		return nil, fmt.Errorf("tax tables for year %d are not loaded", year)
	}
	t, err := p.loader.Load(year)
	if err != nil {
		return nil, fmt.Errorf("loading tax tables for year %d: %w", year, err)
	}
	if t == nil {
		return nil, fmt.Errorf("loader returned no tables for year %d", year)
	}
	p.cache[year] = t
	return t, nil
}
