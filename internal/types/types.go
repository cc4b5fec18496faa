// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleSE     = "se"
	RoleClient = "client"
)

// User is the authoritative identity row. Role drives every guard decision;
// ClientID is only set for client-role users, AssignedClients only for SEs.
type User struct {
	ID              string `db:"id" json:"id"`
	Email           string `db:"email" json:"email"`
	Name            string `db:"name" json:"name"`
	Phone           *string `db:"phone" json:"phone,omitempty"`
	Role            string `db:"role" json:"role"`
	ClientID        *string `db:"client_id" json:"client_id,omitempty"`
	AssignedClients []string `db:"assigned_clients" json:"assigned_clients,omitempty"`
	IsBillingAdmin  bool `db:"is_billing_admin" json:"is_billing_admin"`
	CanManageUsers  bool `db:"can_manage_users" json:"can_manage_users"`
	HourlyCostRate  *float64 `db:"hourly_cost_rate" json:"hourly_cost_rate,omitempty"`
	HourlyBillRate  *float64 `db:"hourly_bill_rate" json:"hourly_bill_rate,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

type Client struct {
	ID                string `db:"id" json:"id"`
	Name              string `db:"name" json:"name"`
	URL               *string `db:"url" json:"url,omitempty"`
	ContractStartDate time.Time `db:"contract_start_date" json:"contract_start_date"`
	Departments       []string `db:"departments" json:"departments"`
	PipelinePhase     string `db:"pipeline_phase" json:"pipeline_phase"`
	AssignedSEs       []string `db:"assigned_ses" json:"assigned_ses"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

type Workflow struct {
	ID                     string `db:"id" json:"id"`
	ClientID               string `db:"client_id" json:"client_id"`
	Name                   string `db:"name" json:"name"`
	Department             string `db:"department" json:"department"`
	Description            *string `db:"description" json:"description,omitempty"`
	IsActive               bool `db:"is_active" json:"is_active"`
	NodeCount              int `db:"node_count" json:"node_count"`
	ExecutionCount         int `db:"execution_count" json:"execution_count"`
	ExceptionCount         int `db:"exception_count" json:"exception_count"`
	TimeSavedPerExecution  float64 `db:"time_saved_per_execution" json:"time_saved_per_execution"`
	MoneySavedPerExecution float64 `db:"money_saved_per_execution" json:"money_saved_per_execution"`
	CreatedAt              time.Time `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time `db:"updated_at" json:"updated_at"`
}

type Exception struct {
	ID         string `db:"id" json:"id"`
	ClientID   string `db:"client_id" json:"client_id"`
	WorkflowID *string `db:"workflow_id" json:"workflow_id,omitempty"`
	Type       string `db:"type" json:"type"`
	Severity   string `db:"severity" json:"severity"`
	Status     string `db:"status" json:"status"`
	Remedy     *string `db:"remedy" json:"remedy,omitempty"`
	ReportedAt time.Time `db:"reported_at" json:"reported_at"`
	ResolvedAt *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
}

type Subscription struct {
	ID                 string `db:"id" json:"id"`
	ClientID           string `db:"client_id" json:"client_id"`
	Plan               string `db:"plan" json:"plan"`
	PlanID             *string `db:"plan_id" json:"plan_id,omitempty"`
	Status             string `db:"status" json:"status"`
	MonthlyPrice       float64 `db:"monthly_price" json:"monthly_price"`
	CurrentPeriodStart time.Time `db:"current_period_start" json:"current_period_start"`
	CurrentPeriodEnd   time.Time `db:"current_period_end" json:"current_period_end"`
}

// SessionClaims is the denormalized copy of the user's authorization
// attributes embedded in the session token. It may lag the users row until
// the next claim sync.
type SessionClaims struct {
	UserRole        string   `json:"user_role"`
	ClientID        string   `json:"client_id,omitempty"`
	AssignedClients []string `json:"assigned_clients,omitempty"`
}

// TenantContext is the resolved per-request tenant scope. ClientID is empty
// for admins operating cross-tenant.
type TenantContext struct {
	UserID   string
	Role     string
	ClientID string
}
