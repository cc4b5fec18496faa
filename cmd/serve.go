// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/nexuslabs/tenancy-service/internal/config"
	"github.com/nexuslabs/tenancy-service/internal/db"
	"github.com/nexuslabs/tenancy-service/internal/idp"
	"github.com/nexuslabs/tenancy-service/internal/logging"
	"github.com/nexuslabs/tenancy-service/internal/monitoring/prometheus"
	"github.com/nexuslabs/tenancy-service/internal/storage"
	"github.com/nexuslabs/tenancy-service/internal/tracing"
	"github.com/nexuslabs/tenancy-service/pkg/authentication"
	"github.com/nexuslabs/tenancy-service/pkg/billing"
	"github.com/nexuslabs/tenancy-service/pkg/clients"
	"github.com/nexuslabs/tenancy-service/pkg/exceptions"
	"github.com/nexuslabs/tenancy-service/pkg/session"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
	"github.com/nexuslabs/tenancy-service/pkg/users"
	"github.com/nexuslabs/tenancy-service/pkg/web"
	"github.com/nexuslabs/tenancy-service/pkg/workflows"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("tenancy-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	base := storage.NewStorage(dbClient, tracer, monitor, logger)

	var elevated storage.StorageInterface
	if specs.ElevatedDSN != "" {
		elevatedConfig := dbConfig
		elevatedConfig.DSN = specs.ElevatedDSN
		elevatedClient, err := db.NewDBClient(elevatedConfig, tracer, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to create elevated database client: %v", err)
		}
		defer elevatedClient.Close()
		elevated = storage.NewStorage(elevatedClient, tracer, monitor, logger)
		logger.Info("Privilege elevation is enabled")
	} else {
		logger.Info("No elevated DSN configured, admin operations use the restricted handle")
	}
	elevator := storage.NewElevator(base, elevated, logger)

	var identity idp.ClientInterface
	if specs.IdpAdminURL != "" {
		identity = idp.NewClient(specs.IdpAdminURL, tracer, monitor, logger)
	} else {
		identity = idp.NewNoopClient(logger)
		logger.Info("No identity provider configured, using noop client")
	}

	tokens := authentication.NewTokenManager(specs.JWTSecret, specs.SessionTTL, tracer, monitor, logger)

	var verifier authentication.TokenVerifierInterface
	if specs.APITokenIssuer != "" {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.APITokenIssuer,
			specs.APITokenJWKSURL,
			specs.APIAllowedSubjects,
			specs.APIRequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up machine token verification: %v", err)
		}
	}

	tenancyService := tenancy.NewService(base, tracer, monitor, logger)
	sessionService := session.NewService(elevator, identity, tenancyService, tokens, tracer, monitor, logger)
	clientsService := clients.NewService(elevator, tracer, monitor, logger)
	usersService := users.NewService(elevator, identity, specs.InvitationLifetime, tracer, monitor, logger)
	workflowsService := workflows.NewService(elevator, tracer, monitor, logger)
	exceptionsService := exceptions.NewService(elevator, tracer, monitor, logger)
	billingService := billing.NewService(elevator, tracer, monitor, logger)

	router := web.NewRouter(
		web.Config{
			Tenancy:            tenancyService,
			Session:            sessionService,
			Clients:            clientsService,
			Users:              usersService,
			Workflows:          workflowsService,
			Exceptions:         exceptionsService,
			Billing:            billingService,
			Authentication:     authentication.NewMiddleware(tokens, verifier, tracer, monitor, logger),
			DBClient:           dbClient,
			SessionTTL:         specs.SessionTTL,
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
		},
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
