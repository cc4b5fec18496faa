// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package response centralizes JSON rendering and the mapping from the
// service error taxonomy onto HTTP status codes, so handlers stay thin and
// denials never leak whether an underlying resource exists.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nexuslabs/tenancy-service/internal/storage"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
)

type errorBody struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, errorBody{Error: message, Status: status})
}

// WriteServiceError maps domain errors to HTTP responses. Forbidden and
// not-found intentionally share terse messages that carry no resource
// details.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tenancy.ErrUnauthorized):
		WriteError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, tenancy.ErrForbidden):
		WriteError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, tenancy.ErrNoTenantContext):
		WriteError(w, http.StatusForbidden, "no tenant context")
	case errors.Is(err, storage.ErrNotFound):
		WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrDuplicateKey):
		WriteError(w, http.StatusConflict, "already exists")
	case errors.Is(err, storage.ErrForeignKeyViolation):
		WriteError(w, http.StatusBadRequest, "invalid reference")
	default:
		WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
