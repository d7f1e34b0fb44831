package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresSaver keeps the latest snapshot in a single-row Postgres table. The
// in-memory store stays authoritative; the database is only a durable sink.
type PostgresSaver struct {
	DB *sql.DB
}

// OpenPostgres connects to Postgres and ensures the snapshot table exists.
func OpenPostgres(url string) (*PostgresSaver, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	query := `
		CREATE TABLE IF NOT EXISTS snapshots (
			id INT PRIMARY KEY DEFAULT 1,
			data JSONB NOT NULL,
			saved_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CHECK (id = 1)
		)
	`
	if _, err := db.Exec(query); err != nil {
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &PostgresSaver{DB: db}, nil
}

func (p *PostgresSaver) Save(d *Data) error {
	b, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	query := `
		INSERT INTO snapshots (id, data, saved_at) VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, saved_at = NOW()
	`
	if _, err := p.DB.Exec(query, b); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LoadPostgres restores a store from the snapshot row, if one exists.
func LoadPostgres(p *PostgresSaver) (*Store, error) {
	s := New(p)
	var b []byte
	err := p.DB.QueryRow(`SELECT data FROM snapshots WHERE id = 1`).Scan(&b)
	if err == sql.ErrNoRows {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	d := newData()
	if err := json.Unmarshal(b, d); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	s.data = d
	return s, nil
}

func (p *PostgresSaver) Close() error {
	return p.DB.Close()
}
