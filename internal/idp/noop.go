// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package idp

import (
	"context"

	"github.com/nexuslabs/tenancy-service/internal/logging"
)

var _ ClientInterface = (*NoopClient)(nil)

// NoopClient is used when no identity provider admin URL is configured, e.g.
// local development where identities live only in the users table.
type NoopClient struct {
	logger logging.LoggerInterface
}

func (c *NoopClient) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	return "", nil
}

func (c *NoopClient) CreateIdentity(ctx context.Context, email string) (string, error) {
	c.logger.Debugf("noop idp: skipping identity creation for %s", email)
	return "", nil
}

func (c *NoopClient) DeleteIdentity(ctx context.Context, id string) error {
	c.logger.Debugf("noop idp: skipping identity deletion for %s", id)
	return nil
}

func (c *NoopClient) CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error) {
	return "", "", nil
}

func NewNoopClient(logger logging.LoggerInterface) *NoopClient {
	return &NoopClient{logger: logger}
}
