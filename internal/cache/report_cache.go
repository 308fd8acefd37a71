package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/inventory-ledger/internal/report"
)

// NewClient builds a redis client and verifies the connection.
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// CachedReporter decorates a Reporter with a redis TTL cache. Redis
// failures fall through to the underlying reporter, never to the caller.
type CachedReporter struct {
	inner report.Reporter
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedReporter(inner report.Reporter, rdb *redis.Client, ttl time.Duration) *CachedReporter {
	return &CachedReporter{inner: inner, rdb: rdb, ttl: ttl}
}

const (
	keyProductSales  = "report:sales:products"
	keyCustomerSales = "report:sales:customers"
)

// Only unwindowed reports are cached; windowed queries are ad hoc and go
// straight through.

// ProductSales implements report.Reporter.
func (c *CachedReporter) ProductSales(w report.Window) ([]report.SalesRow, error) {
	if w.Since != nil || w.Until != nil {
		return c.inner.ProductSales(w)
	}
	var rows []report.SalesRow
	if c.lookup(keyProductSales, &rows) {
		return rows, nil
	}
	rows, err := c.inner.ProductSales(w)
	if err != nil {
		return nil, err
	}
	c.store(keyProductSales, rows)
	return rows, nil
}

// CustomerSales implements report.Reporter.
func (c *CachedReporter) CustomerSales(w report.Window) ([]report.SalesRow, error) {
	if w.Since != nil || w.Until != nil {
		return c.inner.CustomerSales(w)
	}
	var rows []report.SalesRow
	if c.lookup(keyCustomerSales, &rows) {
		return rows, nil
	}
	rows, err := c.inner.CustomerSales(w)
	if err != nil {
		return nil, err
	}
	c.store(keyCustomerSales, rows)
	return rows, nil
}

// LowStock implements report.Reporter. Stock moves on every order, so this
// view is always computed fresh.
func (c *CachedReporter) LowStock(threshold int) (report.LowStockReport, error) {
	return c.inner.LowStock(threshold)
}

// Dashboard implements report.Reporter.
func (c *CachedReporter) Dashboard() (report.Dashboard, error) {
	return c.inner.Dashboard()
}

// Invalidate drops the cached sales reports. Called after order placement
// and catalog mutations.
func (c *CachedReporter) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, keyProductSales, keyCustomerSales).Err(); err != nil {
		log.Printf("failed to invalidate report cache: %v", err)
	}
}

func (c *CachedReporter) lookup(key string, dest any) bool {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("redis error (continuing without cache): %v", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("failed to unmarshal cached report (continuing without cache): %v", err)
		return false
	}
	return true
}

func (c *CachedReporter) store(key string, value any) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("failed to marshal report for cache: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("failed to cache report: %v", err)
	}
}
