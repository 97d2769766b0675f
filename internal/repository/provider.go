package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/chartpull/portal-extractor/internal/common"
)

// ProviderStores hands out read-only connections to the per-provider stores
// that hold historical extraction sessions. Provider names are resolved
// through an explicit allow-list; the store name is never taken from request
// input directly.
type ProviderStores struct {
	dsnTemplate string
	stores      map[string]string
	logger      *slog.Logger

	mu    sync.Mutex
	pools map[string]*pgxpool.Pool
	dbs   map[string]*sql.DB
}

func NewProviderStores(cfg common.ProvidersConfig, logger *slog.Logger) *ProviderStores {
	return &ProviderStores{
		dsnTemplate: cfg.DSNTemplate,
		stores:      cfg.Stores,
		logger:      logger,
		pools:       make(map[string]*pgxpool.Pool),
		dbs:         make(map[string]*sql.DB),
	}
}

// StoreName resolves a provider name against the allow-list.
func (p *ProviderStores) StoreName(provider string) (string, error) {
	name, ok := p.stores[strings.ToLower(strings.TrimSpace(provider))]
	if !ok {
		return "", fmt.Errorf("%w: no store configured for provider %q", common.ErrNotFound, provider)
	}
	return name, nil
}

// DB returns a pooled connection to the provider's store, opening it on
// first use.
func (p *ProviderStores) DB(ctx context.Context, provider string) (*sql.DB, error) {
	store, err := p.StoreName(provider)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if db, ok := p.dbs[store]; ok {
		return db, nil
	}

	dsn := strings.ReplaceAll(p.dsnTemplate, "{store}", store)
	pc, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		p.logger.Error("invalid provider store DSN", "provider", provider, "store", store, "error", err)
		return nil, fmt.Errorf("%w: parsing DSN for store %q: %v", common.ErrInfrastructure, store, err)
	}
	pc.ConnConfig.RuntimeParams["application_name"] = "portal-extractor-coverage"

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		p.logger.Error("failed to open provider store", "provider", provider, "store", store, "error", err)
		return nil, fmt.Errorf("%w: connecting to store %q: %v", common.ErrInfrastructure, store, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	p.pools[store] = pool
	p.dbs[store] = db
	p.logger.Info("opened provider store", "provider", provider, "store", store)
	return db, nil
}

// Close releases every opened provider pool.
func (p *ProviderStores) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for store, db := range p.dbs {
		if err := db.Close(); err != nil {
			p.logger.Error("failed to close provider store", "store", store, "error", err)
		}
	}
	for _, pool := range p.pools {
		pool.Close()
	}
	p.pools = make(map[string]*pgxpool.Pool)
	p.dbs = make(map[string]*sql.DB)
}
