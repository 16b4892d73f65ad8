package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL completo, idempotente. La unicidad de stock_levels usa
// COALESCE(shelf_id, '') para que el shelf nulo cuente como valor propio.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL DEFAULT '',
	role          TEXT NOT NULL,
	is_active     BOOLEAN NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS warehouses (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	address    TEXT NOT NULL DEFAULT '',
	is_active  BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS shelves (
	id           TEXT PRIMARY KEY,
	warehouse_id TEXT NOT NULL REFERENCES warehouses(id),
	code         TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (warehouse_id, code)
);

CREATE TABLE IF NOT EXISTS categories (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS units (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	short_code TEXT NOT NULL UNIQUE,
	is_active  BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id              TEXT PRIMARY KEY,
	sku             TEXT NOT NULL UNIQUE,
	name            TEXT NOT NULL,
	search_name     TEXT NOT NULL DEFAULT '',
	barcode         TEXT UNIQUE,
	category_id     TEXT REFERENCES categories(id),
	unit_id         TEXT NOT NULL REFERENCES units(id),
	min_stock_level NUMERIC(14,3) NOT NULL DEFAULT 0,
	description     TEXT NOT NULL DEFAULT '',
	is_active       BOOLEAN NOT NULL DEFAULT TRUE,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_products_search_name ON products (search_name);

CREATE TABLE IF NOT EXISTS suppliers (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	phone      TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT '',
	address    TEXT NOT NULL DEFAULT '',
	is_active  BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS customers (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	phone      TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT '',
	address    TEXT NOT NULL DEFAULT '',
	is_active  BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS stock_levels (
	id           TEXT PRIMARY KEY,
	product_id   TEXT NOT NULL REFERENCES products(id),
	warehouse_id TEXT NOT NULL REFERENCES warehouses(id),
	shelf_id     TEXT REFERENCES shelves(id),
	quantity     NUMERIC(14,3) NOT NULL DEFAULT 0,
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS uq_stock_levels_key
	ON stock_levels (product_id, warehouse_id, COALESCE(shelf_id, ''));

CREATE TABLE IF NOT EXISTS stock_movements (
	id             TEXT PRIMARY KEY,
	product_id     TEXT NOT NULL REFERENCES products(id),
	warehouse_id   TEXT NOT NULL REFERENCES warehouses(id),
	shelf_id       TEXT REFERENCES shelves(id),
	kind           TEXT NOT NULL CHECK (kind IN ('IN', 'OUT', 'ADJUST')),
	quantity       NUMERIC(14,3) NOT NULL,
	reference_type TEXT NOT NULL DEFAULT '',
	reason         TEXT,
	note           TEXT NOT NULL DEFAULT '',
	created_by     TEXT NOT NULL REFERENCES users(id),
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_stock_movements_created_at ON stock_movements (created_at);
CREATE INDEX IF NOT EXISTS idx_stock_movements_product ON stock_movements (product_id, created_at);

CREATE TABLE IF NOT EXISTS purchases (
	id           TEXT PRIMARY KEY,
	supplier_id  TEXT NOT NULL REFERENCES suppliers(id),
	warehouse_id TEXT NOT NULL REFERENCES warehouses(id),
	shelf_id     TEXT REFERENCES shelves(id),
	status       TEXT NOT NULL CHECK (status IN ('DRAFT', 'RECEIVED')),
	note         TEXT NOT NULL DEFAULT '',
	created_by   TEXT NOT NULL REFERENCES users(id),
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	received_by  TEXT REFERENCES users(id),
	received_at  TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS purchase_items (
	id          TEXT PRIMARY KEY,
	purchase_id TEXT NOT NULL REFERENCES purchases(id),
	product_id  TEXT NOT NULL REFERENCES products(id),
	quantity    NUMERIC(14,3) NOT NULL CHECK (quantity > 0),
	UNIQUE (purchase_id, product_id)
);
`

// EnsureSchema crea las tablas e índices que falten. Seguro de correr más de
// una vez; lo usa cmd/seed antes de sembrar datos.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
