package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adiwarna/maintenance-management/internal"
	"github.com/adiwarna/maintenance-management/internal/auth"
	authPostgres "github.com/adiwarna/maintenance-management/internal/auth/postgres"
	"github.com/adiwarna/maintenance-management/internal/calendar"
	"github.com/adiwarna/maintenance-management/internal/core/events"
	"github.com/adiwarna/maintenance-management/internal/equipment"
	equipmentPostgres "github.com/adiwarna/maintenance-management/internal/equipment/postgres"
	"github.com/adiwarna/maintenance-management/internal/profile"
	profilePostgres "github.com/adiwarna/maintenance-management/internal/profile/postgres"
	"github.com/adiwarna/maintenance-management/internal/report"
	"github.com/adiwarna/maintenance-management/internal/request"
	requestPostgres "github.com/adiwarna/maintenance-management/internal/request/postgres"
	"github.com/adiwarna/maintenance-management/internal/team"
	teamPostgres "github.com/adiwarna/maintenance-management/internal/team/postgres"
	"github.com/adiwarna/maintenance-management/internal/transport/rest"
	"github.com/adiwarna/maintenance-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	GormDB   *gorm.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	appLogger := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{
		Conn: db.DB,
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	bus := events.NewEventBus(appLogger)
	events.RegisterAuditSubscriber(bus, appLogger)

	tokens := auth.NewJWTTokenGenerator(
		[]byte(config.Security.AccessTokenSecret),
		[]byte(config.Security.RefreshTokenSecret),
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)

	authRepo := authPostgres.NewAuthRepository(gormDB)
	authService := auth.NewService(authRepo, tokens, appLogger)
	authHandler := auth.NewHandler(authService)

	profileRepo := profilePostgres.NewProfileRepository(gormDB)
	profileService := profile.NewService(profileRepo, appLogger)
	profileHandler := profile.NewHandler(profileService)

	teamRepo := teamPostgres.NewTeamRepository(gormDB)
	teamService := team.NewService(teamRepo, appLogger)
	teamHandler := team.NewHandler(teamService)

	equipmentRepo := equipmentPostgres.NewEquipmentRepository(gormDB)
	equipmentService := equipment.NewService(equipmentRepo, appLogger)
	equipmentHandler := equipment.NewHandler(equipmentService)

	requestRepo := requestPostgres.NewRequestRepository(gormDB)
	requestService := request.NewService(requestRepo, equipmentRepo, bus, appLogger)
	requestHandler := request.NewHandler(requestService)

	reportService := report.NewService(requestService, equipmentService, teamService, appLogger)
	reportHandler := report.NewHandler(reportService)

	calendarHandler := calendar.NewHandler(requestService)

	return &Dependencies{
		Config: config,
		Logger: appLogger,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
		Handlers: rest.Handlers{
			Auth:      authHandler,
			Profile:   profileHandler,
			Team:      teamHandler,
			Equipment: equipmentHandler,
			Request:   requestHandler,
			Report:    reportHandler,
			Calendar:  calendarHandler,
		},
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
