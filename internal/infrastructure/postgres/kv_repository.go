package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-vendas/internal/domain/entity"
	"github.com/jhoicas/controle-vendas/internal/infrastructure/store"
)

var (
	_ store.BatchBackend = (*KVBackend)(nil)
	_ store.AmountReader = (*KVBackend)(nil)
)

// amount: ingreso total para sales-records, valor del stock para sales-products.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv_records (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	amount     NUMERIC(20,2) NOT NULL DEFAULT 0,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
ALTER TABLE kv_records ADD COLUMN IF NOT EXISTS amount NUMERIC(20,2) NOT NULL DEFAULT 0`

// KVRepository lecturas y escrituras sobre kv_records.
type KVRepository struct {
	q Querier
}

// NewKVRepository construye el repositorio sobre el pool o una transacción.
func NewKVRepository(q Querier) *KVRepository {
	return &KVRepository{q: q}
}

func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var raw []byte
	err := r.q.QueryRow(ctx, `SELECT value::text FROM kv_records WHERE key = $1`, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", key, err)
	}
	return raw, nil
}

func (r *KVRepository) Put(ctx context.Context, key string, value []byte) error {
	amount, err := recordAmount(key, value)
	if err != nil {
		return fmt.Errorf("resumir %s: %w", key, err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO kv_records (key, value, amount, updated_at) VALUES ($1, $2::jsonb, $3, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, amount = EXCLUDED.amount, updated_at = EXCLUDED.updated_at`,
		key, string(value), amount)
	if err != nil {
		return fmt.Errorf("guardar %s: %w", key, err)
	}
	return nil
}

// Amount lee el monto resumen de la clave (NUMERIC -> decimal.Decimal vía pgx-shopspring-decimal).
func (r *KVRepository) Amount(ctx context.Context, key string) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT amount FROM kv_records WHERE key = $1`, key).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, store.ErrKeyNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("leer monto %s: %w", key, err)
	}
	return amount, nil
}

// recordAmount calcula el monto resumen de una colección serializada. Claves sin resumen valen 0.
func recordAmount(key string, value []byte) (decimal.Decimal, error) {
	switch key {
	case store.KeySales:
		var sales []entity.Sale
		if err := json.Unmarshal(value, &sales); err != nil {
			return decimal.Zero, err
		}
		return entity.SalesRevenue(sales).Round(2), nil
	case store.KeyProducts:
		var products []entity.Product
		if err := json.Unmarshal(value, &products); err != nil {
			return decimal.Zero, err
		}
		return entity.TotalStockValue(products).Round(2), nil
	}
	return decimal.Zero, nil
}

// KVBackend backend del store de registros sobre PostgreSQL. SaveAll escribe todas las
// claves en una transacción.
type KVBackend struct {
	pool *pgxpool.Pool
}

// NewKVBackend crea la tabla si no existe.
func NewKVBackend(ctx context.Context, pool *pgxpool.Pool) (*KVBackend, error) {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return nil, fmt.Errorf("crear tabla kv_records: %w", err)
	}
	return &KVBackend{pool: pool}, nil
}

func (b *KVBackend) Load(ctx context.Context, key string) ([]byte, error) {
	return NewKVRepository(b.pool).Get(ctx, key)
}

func (b *KVBackend) Save(ctx context.Context, key string, value []byte) error {
	return NewKVRepository(b.pool).Put(ctx, key, value)
}

func (b *KVBackend) Amount(ctx context.Context, key string) (decimal.Decimal, error) {
	return NewKVRepository(b.pool).Amount(ctx, key)
}

func (b *KVBackend) SaveAll(ctx context.Context, values map[string][]byte) error {
	return b.run(ctx, func(repo *KVRepository) error {
		for key, value := range values {
			if err := repo.Put(ctx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

// run inicia una transacción, ejecuta fn con el repositorio atado a la tx y hace Commit o Rollback.
func (b *KVBackend) run(ctx context.Context, fn func(repo *KVRepository) error) error {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewKVRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
