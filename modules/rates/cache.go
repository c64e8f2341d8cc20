package rates

import (
	"context"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"kursbot/modules/currency"
)

const (
	freshKey     = "rates"
	lastKnownKey = "rates_last_known"
)

// Cache wraps a Supplier with TTL caching and stale-while-revalidate: once
// the fresh entry expires the last known table keeps being served while a
// single background refresh runs. Every Rates call returns its own copy, so
// one response is always priced from one consistent snapshot.
type Cache struct {
	supplier       Supplier
	store          *gocache.Cache
	refreshTimeout time.Duration
	refreshing     atomic.Bool
}

func NewCache(supplier Supplier, ttl time.Duration) *Cache {
	return &Cache{
		supplier:       supplier,
		store:          gocache.New(ttl, 2*ttl),
		refreshTimeout: defaultTimeout * 2,
	}
}

func (c *Cache) Rates(ctx context.Context) (currency.RateTable, error) {
	if v, ok := c.store.Get(freshKey); ok {
		return cloneTable(v.(currency.RateTable)), nil
	}
	if v, ok := c.store.Get(lastKnownKey); ok {
		c.refreshAsync()
		return cloneTable(v.(currency.RateTable)), nil
	}
	return c.Refresh(ctx)
}

// Refresh fetches a new table and installs it as both the fresh and the
// last-known entry.
func (c *Cache) Refresh(ctx context.Context) (currency.RateTable, error) {
	table, err := c.supplier.Rates(ctx)
	if err != nil {
		return nil, err
	}
	c.store.Set(freshKey, table, gocache.DefaultExpiration)
	c.store.Set(lastKnownKey, table, gocache.NoExpiration)
	return cloneTable(table), nil
}

// refreshAsync starts at most one concurrent background refresh.
func (c *Cache) refreshAsync() {
	if !c.refreshing.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.refreshing.Store(false)
		ctx, cancel := context.WithTimeout(context.Background(), c.refreshTimeout)
		defer cancel()
		if _, err := c.Refresh(ctx); err != nil {
			logrus.Warnf("background rates refresh failed, serving stale data: %v", err)
		}
	}()
}

func cloneTable(t currency.RateTable) currency.RateTable {
	out := make(currency.RateTable, len(t))
	for code, rate := range t {
		out[code] = rate
	}
	return out
}
