// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package db -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package db -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package db -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestLogger(t *testing.T) *MockLoggerInterface {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockLoggerInterface(ctrl)
}

func TestTransactionMiddleware_SkipsReadOnlyRequests(t *testing.T) {
	logger := newTestLogger(t)
	client, rec := newRecordingClient()

	handler := TransactionMiddleware(client, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/clients", nil))

	if got := rec.snapshot(); len(got) != 0 {
		t.Errorf("expected no transaction on a GET, got %v", got)
	}
}

func TestTransactionMiddleware_CommitsMutations(t *testing.T) {
	logger := newTestLogger(t)
	client, rec := newRecordingClient()

	handler := TransactionMiddleware(client, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := client.Statement(r.Context()).Insert("clients").Columns("id").Values("client-a").Exec(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/clients", nil))

	got := rec.snapshot()
	if countEvent(got, "commit") != 1 || countEvent(got, "rollback") != 0 {
		t.Errorf("expected the request transaction to commit, got %v", got)
	}
}

func TestTransactionMiddleware_RollsBackOnErrorStatus(t *testing.T) {
	logger := newTestLogger(t)
	logger.EXPECT().Errorf(gomock.Any(), gomock.Any())

	client, rec := newRecordingClient()

	handler := TransactionMiddleware(client, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := client.Statement(r.Context()).Insert("clients").Columns("id").Values("client-a").Exec(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		w.WriteHeader(http.StatusConflict)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/clients", nil))

	got := rec.snapshot()
	if countEvent(got, "rollback") != 1 || countEvent(got, "commit") != 0 {
		t.Errorf("expected the request transaction to roll back, got %v", got)
	}
}

func TestTransactionMiddleware_LogsCommitFailure(t *testing.T) {
	logger := newTestLogger(t)
	logger.EXPECT().Errorf(gomock.Any(), gomock.Any())

	client, rec := newRecordingClient()
	rec.failCommit = true

	handler := TransactionMiddleware(client, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := client.Statement(r.Context()).Insert("clients").Columns("id").Values("client-a").Exec(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/clients", nil))
}
