package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/hotel-api/internal/config"
	"github.com/KirkDiggler/hotel-api/internal/database"
	"github.com/KirkDiggler/hotel-api/internal/engine"
	healthhandler "github.com/KirkDiggler/hotel-api/internal/handlers/health"
	"github.com/KirkDiggler/hotel-api/internal/handlers/hotel/v1alpha1"
	"github.com/KirkDiggler/hotel-api/internal/orchestrators/booking"
	"github.com/KirkDiggler/hotel-api/internal/pkg/clock"
	"github.com/KirkDiggler/hotel-api/internal/pkg/idgen"
	"github.com/KirkDiggler/hotel-api/internal/redis"
	"github.com/KirkDiggler/hotel-api/internal/repositories/hotel"
	"github.com/KirkDiggler/hotel-api/internal/server"
)

var (
	grpcPort int
	httpAddr string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long:  `Start the booking service over gRPC and HTTP. Settings come from the environment; flags override them.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP listen address")
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("http-addr") {
		cfg.HTTPAddr = httpAddr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	return run(ctx, cfg, os.Stdout)
}

// store bundles the selected hotel repository with its health checks
type store struct {
	repo   hotel.Repository
	checks map[string]healthhandler.Checker
	close  func()
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store, error) {
	clk := clock.New()

	switch cfg.StoreBackend {
	case config.StoreRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
			PoolSize:        10,
			MinIdleConns:    2,
			ConnMaxIdleTime: 5 * time.Minute,
			MaxRetries:      3,
		})
		if err != nil {
			return nil, fmt.Errorf("creating redis client: %w", err)
		}
		if err := redis.Ping(ctx, client); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("pinging redis: %w", err)
		}

		repo, err := hotel.NewRedis(&hotel.RedisConfig{Client: client, Clock: clk})
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("creating redis repository: %w", err)
		}
		logger.Info("connected to redis", "addr", cfg.RedisAddr)

		return &store{
			repo: repo,
			checks: map[string]healthhandler.Checker{
				"redis": healthhandler.CheckerFunc(func(ctx context.Context) error {
					return redis.Ping(ctx, client)
				}),
			},
			close: func() { _ = client.Close() },
		}, nil

	case config.StoreSQLite:
		if cfg.DBPath != database.MemoryPath {
			if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}

		db, err := database.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("connecting to sqlite: %w", err)
		}

		repo, err := hotel.NewSQLite(ctx, &hotel.SQLiteConfig{DB: db, Clock: clk})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("creating sqlite repository: %w", err)
		}
		logger.Info("connected to sqlite", "path", cfg.DBPath)

		return &store{
			repo:   repo,
			checks: map[string]healthhandler.Checker{"sqlite": database.Checker{DB: db}},
			close:  func() { _ = db.Close() },
		}, nil

	default:
		logger.Info("using in-memory store")
		return &store{
			repo:   hotel.NewInMemoryWithClock(clk),
			checks: map[string]healthhandler.Checker{},
			close:  func() {},
		}, nil
	}
}

func run(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	eng, err := engine.New(&engine.Config{MaxRoomsPerBooking: cfg.MaxRoomsPerBooking})
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	broker := server.NewBroker()

	bookingService, err := booking.NewOrchestrator(&booking.Config{
		HotelRepo:    st.repo,
		Engine:       eng,
		IDGenerator:  idgen.NewUUID("bk"),
		Publisher:    broker,
		SeedHotelIDs: []string{cfg.HotelID},
	})
	if err != nil {
		return fmt.Errorf("creating booking service: %w", err)
	}

	// --- gRPC ---
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	grpcLogger := interceptorLogger(logger)
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpcLogger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpcLogger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	bookingHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		BookingService: bookingService,
		DefaultHotelID: cfg.HotelID,
	})
	if err != nil {
		return fmt.Errorf("failed to create booking handler: %w", err)
	}
	v1alpha1.RegisterBookingServiceServer(grpcServer, bookingHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	// --- HTTP ---
	httpServer, err := server.New(&server.Config{
		Addr:           cfg.HTTPAddr,
		Logger:         logger,
		BookingService: bookingService,
		Broker:         broker,
		Mount: func(r chi.Router) {
			r.Mount("/healthz", healthhandler.NewHandler(logger, st.checks).Routes())
		},
	})
	if err != nil {
		return fmt.Errorf("creating http server: %w", err)
	}

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting grpc server", "port", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve grpc: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return httpServer.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		healthServer.Shutdown()

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()

		select {
		case <-time.After(30 * time.Second):
			logger.Warn("graceful shutdown timeout exceeded, forcing stop")
			grpcServer.Stop()
		case <-stopped:
		}

		return httpServer.Shutdown(context.Background())
	})

	return g.Wait()
}

// interceptorLogger adapts slog to the grpc logging middleware
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(level), msg, fields...)
	})
}
