// Package databasetest provides an in-memory database.DB for unit tests.
package databasetest

import (
	"context"
	"fmt"
	"sync"

	"jobquery/internal/database"
)

type Call struct {
	Query string
	Args  []any
}

// FakeDB records Exec calls and answers Query through QueryFunc.
type FakeDB struct {
	mu sync.Mutex

	QueryFunc func(query string, args ...any) ([][]any, error)
	ExecErr   error

	Execs      []Call
	TxExecs    []Call
	Queries    []Call
	Committed  bool
	RolledBack bool
}

func (f *FakeDB) Ping(context.Context) error { return nil }
func (f *FakeDB) Close() error               { return nil }

func (f *FakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Execs = append(f.Execs, Call{Query: query, Args: args})
	if f.ExecErr != nil {
		return 0, f.ExecErr
	}
	return 1, nil
}

func (f *FakeDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	f.mu.Lock()
	f.Queries = append(f.Queries, Call{Query: query, Args: args})
	fn := f.QueryFunc
	f.mu.Unlock()

	if fn == nil {
		return &Rows{}, nil
	}
	data, err := fn(query, args...)
	if err != nil {
		return nil, err
	}
	return &Rows{data: data, idx: -1}, nil
}

func (f *FakeDB) Begin(context.Context) (database.Tx, error) {
	return &fakeTx{db: f}, nil
}

type fakeTx struct {
	db   *FakeDB
	done bool
}

func (t *fakeTx) Exec(_ context.Context, query string, args ...any) (int64, error) {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	t.db.TxExecs = append(t.db.TxExecs, Call{Query: query, Args: args})
	if t.db.ExecErr != nil {
		return 0, t.db.ExecErr
	}
	return 1, nil
}

func (t *fakeTx) Commit(context.Context) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	t.done = true
	t.db.Committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	if !t.done {
		t.db.RolledBack = true
	}
	return nil
}

// Rows iterates over pre-baked values. Scan supports *string, *int and *any.
type Rows struct {
	data [][]any
	idx  int
}

func (r *Rows) Close() {}

func (r *Rows) Next() bool {
	if r.idx+1 >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.idx < 0 || r.idx >= len(r.data) {
		return fmt.Errorf("scan outside of rows")
	}
	row := r.data[r.idx]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d destinations for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			v, ok := row[i].(string)
			if !ok {
				return fmt.Errorf("scan: column %d is %T, not string", i, row[i])
			}
			*p = v
		case *int:
			v, ok := row[i].(int)
			if !ok {
				return fmt.Errorf("scan: column %d is %T, not int", i, row[i])
			}
			*p = v
		case *any:
			*p = row[i]
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

func (r *Rows) Err() error { return nil }
