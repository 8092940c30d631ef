package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

type Dialect string

const (
	DialectMySQL    Dialect = "mysql"
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

const kvTable = "kv_entries"

// SQLStore persists entries in a single kv_entries table.
type SQLStore struct {
	DB      *sql.DB
	Dialect Dialect
	Now     func() time.Time
}

func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{DB: db, Dialect: dialect, Now: time.Now}
}

// EnsureSchema creates the kv table when missing.
func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("db tidak tersedia")
	}
	_, err := s.DB.ExecContext(ctx, s.ddl())
	return err
}

func (s *SQLStore) ddl() string {
	switch s.Dialect {
	case DialectMySQL:
		return `
CREATE TABLE IF NOT EXISTS kv_entries (
	k VARCHAR(191) NOT NULL PRIMARY KEY,
	v LONGTEXT NOT NULL,
	updated_at BIGINT NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	case DialectPostgres:
		return `
CREATE TABLE IF NOT EXISTS kv_entries (
	k TEXT PRIMARY KEY,
	v TEXT NOT NULL,
	updated_at BIGINT NOT NULL
)`
	default:
		return `
CREATE TABLE IF NOT EXISTS kv_entries (
	k TEXT PRIMARY KEY,
	v TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`
	}
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v string
	err := s.DB.QueryRowContext(ctx, s.bind(`SELECT v FROM `+kvTable+` WHERE k = ?`), key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(v), true, nil
}

func (s *SQLStore) Put(ctx context.Context, entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	upsert := s.bind(s.upsertSQL())
	del := s.bind(`DELETE FROM ` + kvTable + ` WHERE k = ?`)
	now := s.now().Unix()
	for _, e := range entries {
		if e.Value == nil {
			if _, err := tx.ExecContext(ctx, del, e.Key); err != nil {
				return fmt.Errorf("delete %s: %w", e.Key, err)
			}
			continue
		}
		if _, err := tx.ExecContext(ctx, upsert, e.Key, string(e.Value), now); err != nil {
			return fmt.Errorf("put %s: %w", e.Key, err)
		}
	}
	return tx.Commit()
}

func (s *SQLStore) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func (s *SQLStore) upsertSQL() string {
	if s.Dialect == DialectMySQL {
		return `INSERT INTO ` + kvTable + ` (k, v, updated_at) VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE v = VALUES(v), updated_at = VALUES(updated_at)`
	}
	return `INSERT INTO ` + kvTable + ` (k, v, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (k) DO UPDATE SET v = excluded.v, updated_at = excluded.updated_at`
}

// bind rewrites ? placeholders to $n for postgres.
func (s *SQLStore) bind(query string) string {
	if s.Dialect != DialectPostgres {
		return query
	}
	var out strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&out, "$%d", n)
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

func (s *SQLStore) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
