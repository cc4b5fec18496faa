// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/nexuslabs/tenancy-service/internal/logging"
)

// recorder captures the connection-level events of one fake database so the
// tests can assert which credential a statement actually ran on.
type recorder struct {
	mu         sync.Mutex
	events     []string
	failCommit bool
}

func (r *recorder) record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

type recConnector struct {
	rec *recorder
}

func (c recConnector) Connect(context.Context) (driver.Conn, error) {
	return &recConn{rec: c.rec}, nil
}

func (c recConnector) Driver() driver.Driver { return recDriver{} }

type recDriver struct{}

func (recDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("open by DSN is not supported")
}

type recConn struct {
	rec *recorder
}

func (c *recConn) Prepare(query string) (driver.Stmt, error) {
	return &recStmt{rec: c.rec, query: query}, nil
}

func (c *recConn) Close() error { return nil }

func (c *recConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *recConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	c.rec.record("begin")
	return &recTx{rec: c.rec}, nil
}

type recTx struct {
	rec *recorder
}

func (t *recTx) Commit() error {
	if t.rec.failCommit {
		t.rec.record("commit_error")
		return errors.New("commit failed")
	}
	t.rec.record("commit")
	return nil
}

func (t *recTx) Rollback() error {
	t.rec.record("rollback")
	return nil
}

type recStmt struct {
	rec   *recorder
	query string
}

func (s *recStmt) Close() error  { return nil }
func (s *recStmt) NumInput() int { return -1 }

func (s *recStmt) Exec([]driver.Value) (driver.Result, error) {
	s.rec.record("exec:" + s.query)
	return driver.RowsAffected(1), nil
}

func (s *recStmt) Query([]driver.Value) (driver.Rows, error) {
	s.rec.record("query:" + s.query)
	return &recRows{}, nil
}

type recRows struct{}

func (r *recRows) Columns() []string              { return []string{} }
func (r *recRows) Close() error                   { return nil }
func (r *recRows) Next(dest []driver.Value) error { return io.EOF }

func newRecordingClient() (*DBClient, *recorder) {
	rec := &recorder{}
	sqlDB := sql.OpenDB(recConnector{rec: rec})

	d := new(DBClient)
	d.db = sqlDB
	d.dbRunner = sqlDB
	d.logger = logging.NewNoopLogger()

	return d, rec
}

func TestDBClient_WithTx_ElevatedStatementStaysOnItsOwnConnection(t *testing.T) {
	base, baseRec := newRecordingClient()
	elevated, elevatedRec := newRecordingClient()

	err := base.WithTx(context.Background(), func(txCtx context.Context) error {
		_, err := elevated.Statement(txCtx).
			Insert("clients").
			Columns("id").
			Values("client-a").
			Exec()
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"begin", "exec:INSERT INTO clients (id) VALUES ($1)", "commit"}
	if got := elevatedRec.snapshot(); !slices.Equal(got, want) {
		t.Errorf("expected the elevated connection to carry the statement, got %v", got)
	}
	if got := baseRec.snapshot(); len(got) != 0 {
		t.Errorf("expected no activity on the restricted connection, got %v", got)
	}
}

func TestDBClient_WithTx_ReusesOneTransactionPerConnection(t *testing.T) {
	base, baseRec := newRecordingClient()

	err := base.WithTx(context.Background(), func(txCtx context.Context) error {
		for _, id := range []string{"client-a", "client-b"} {
			if _, err := base.Statement(txCtx).Insert("clients").Columns("id").Values(id).Exec(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := baseRec.snapshot()
	if n := countEvent(got, "begin"); n != 1 {
		t.Errorf("expected a single begin, got %d in %v", n, got)
	}
	if n := countEvent(got, "commit"); n != 1 {
		t.Errorf("expected a single commit, got %d in %v", n, got)
	}
}

func TestDBClient_WithTx_CommitsEveryStartedTransaction(t *testing.T) {
	base, baseRec := newRecordingClient()
	elevated, elevatedRec := newRecordingClient()

	err := base.WithTx(context.Background(), func(txCtx context.Context) error {
		if _, err := base.Statement(txCtx).Insert("users").Columns("id").Values("user-1").Exec(); err != nil {
			return err
		}
		_, err := elevated.Statement(txCtx).Insert("clients").Columns("id").Values("client-a").Exec()
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, rec := range map[string]*recorder{"restricted": baseRec, "elevated": elevatedRec} {
		got := rec.snapshot()
		if countEvent(got, "begin") != 1 || countEvent(got, "commit") != 1 {
			t.Errorf("expected the %s connection to begin and commit its own transaction, got %v", name, got)
		}
	}
}

func TestDBClient_WithTx_RollsBackEveryStartedTransactionOnError(t *testing.T) {
	base, baseRec := newRecordingClient()
	elevated, elevatedRec := newRecordingClient()

	handlerErr := errors.New("request failed with status 500")
	err := base.WithTx(context.Background(), func(txCtx context.Context) error {
		if _, err := base.Statement(txCtx).Insert("users").Columns("id").Values("user-1").Exec(); err != nil {
			return err
		}
		if _, err := elevated.Statement(txCtx).Insert("clients").Columns("id").Values("client-a").Exec(); err != nil {
			return err
		}
		return handlerErr
	})
	if !errors.Is(err, handlerErr) {
		t.Fatalf("expected the handler error back, got %v", err)
	}

	for name, rec := range map[string]*recorder{"restricted": baseRec, "elevated": elevatedRec} {
		got := rec.snapshot()
		if countEvent(got, "rollback") != 1 || countEvent(got, "commit") != 0 {
			t.Errorf("expected the %s connection to roll back, got %v", name, got)
		}
	}
}

func TestDBClient_WithTx_NoStatementsNoTransaction(t *testing.T) {
	base, baseRec := newRecordingClient()

	if err := base.WithTx(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := baseRec.snapshot(); len(got) != 0 {
		t.Errorf("expected no transaction without statements, got %v", got)
	}
}

func countEvent(events []string, event string) int {
	n := 0
	for _, e := range events {
		if e == event {
			n++
		}
	}
	return n
}
