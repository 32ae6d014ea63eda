// Package storage elige el backend del store de registros según la configuración.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/controle-vendas/internal/infrastructure/postgres"
	"github.com/jhoicas/controle-vendas/internal/infrastructure/store"
	"github.com/jhoicas/controle-vendas/pkg/config"
	"github.com/jhoicas/controle-vendas/pkg/logger"
)

// Open devuelve el backend de STORE_DRIVER y la función que libera sus recursos.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (store.Backend, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		backend, err := postgres.NewKVBackend(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return backend, pool.Close, nil
	case config.StoreDriverMemory:
		log.Warn().Msg("store en memoria: los datos se pierden al cerrar")
		return store.NewMemoryBackend(), func() {}, nil
	default:
		backend, err := store.NewFileBackend(cfg.Store.Dir)
		if err != nil {
			return nil, nil, err
		}
		return backend, func() {}, nil
	}
}
