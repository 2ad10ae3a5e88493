package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

var ErrLocked = errors.New("store: database is held by another process")

// Store is the SQLite database behind the embedded API.
type Store struct {
	DB   *sql.DB
	lock *flock.Flock
	now  func() time.Time
}

// Open takes an exclusive lock next to path, opens the database and
// migrates it.
func Open(path string) (*Store, error) {
	lk := flock.New(path + ".lock")
	ok, err := lk.TryLock()
	if err != nil {
		return nil, fmt.Errorf("store: lock %s: %w", path, err)
	}
	if !ok {
		return nil, ErrLocked
	}

	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		_ = lk.Unlock()
		return nil, err
	}
	pool.SetMaxOpenConns(1)
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		_ = lk.Unlock()
		return nil, err
	}
	if err := Migrate(pool); err != nil {
		_ = pool.Close()
		_ = lk.Unlock()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return &Store{DB: pool, lock: lk, now: time.Now}, nil
}

func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	err := s.DB.Close()
	if uerr := s.lock.Unlock(); err == nil {
		err = uerr
	}
	return err
}

func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
