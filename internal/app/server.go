package app

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	grpcv1alpha1 "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/handlers/grpc/v1alpha1"
	restv1 "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/handlers/rest/v1"
)

const readHeaderTimeout = 10 * time.Second

// ServerConfig holds what the server needs to listen and serve
type ServerConfig struct {
	HTTPAddr        string
	GRPCAddr        string
	Services        *Services
	Logger          *slog.Logger
	ShutdownTimeout time.Duration
}

// Validate ensures all required settings are present
func (c *ServerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("HTTPAddr", c.HTTPAddr, vb)
	errors.ValidateRequired("GRPCAddr", c.GRPCAddr, vb)
	if c.Services == nil {
		vb.RequiredField("Services")
	}
	return vb.Build()
}

// Server hosts the REST and gRPC transports of the catalog
type Server struct {
	httpListener net.Listener
	grpcListener net.Listener
	httpServer   *http.Server
	grpcServer   *grpc.Server
	health       *health.Server
	logger       *slog.Logger
	timeout      time.Duration
}

// NewServer binds both listeners and registers every handler
func NewServer(cfg *ServerConfig) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	restHandler, err := restv1.NewHandler(&restv1.HandlerConfig{
		CatalogService: cfg.Services.Catalog,
		EquipService:   cfg.Services.Equip,
		LootService:    cfg.Services.Loot,
		Events:         cfg.Services.Events,
		Logger:         logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rest handler")
	}

	grpcHandler, err := grpcv1alpha1.NewHandler(&grpcv1alpha1.HandlerConfig{
		CatalogService: cfg.Services.Catalog,
		EquipService:   cfg.Services.Equip,
		LootService:    cfg.Services.Loot,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create grpc handler")
	}

	httpListener, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to listen on %s", cfg.HTTPAddr)
	}
	grpcListener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		_ = httpListener.Close()
		return nil, errors.Wrapf(err, "failed to listen on %s", cfg.GRPCAddr)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoveryHandler(logger))),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoveryHandler(logger))),
		),
	)
	grpcv1alpha1.RegisterCatalogServiceServer(grpcServer, grpcHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(grpcv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	return &Server{
		httpListener: httpListener,
		grpcListener: grpcListener,
		httpServer: &http.Server{
			Handler:           restHandler.Routes(),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		grpcServer: grpcServer,
		health:     healthServer,
		logger:     logger,
		timeout:    timeout,
	}, nil
}

// HTTPAddr returns the bound REST address
func (s *Server) HTTPAddr() string {
	return s.httpListener.Addr().String()
}

// GRPCAddr returns the bound gRPC address
func (s *Server) GRPCAddr() string {
	return s.grpcListener.Addr().String()
}

// Serve runs both transports until ctx is cancelled or one of them fails,
// then shuts both down within the shutdown timeout
func (s *Server) Serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("http server listening", "addr", s.HTTPAddr())
		if err := s.httpServer.Serve(s.httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server failed")
		}
		return nil
	})

	g.Go(func() error {
		s.logger.Info("grpc server listening", "addr", s.GRPCAddr())
		if err := s.grpcServer.Serve(s.grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return errors.Wrap(err, "grpc server failed")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.shutdown()
		return nil
	})

	return g.Wait()
}

func (s *Server) shutdown() {
	s.logger.Info("shutting down servers")
	s.health.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("http shutdown incomplete", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		s.logger.Warn("graceful shutdown timeout exceeded, forcing stop")
		s.grpcServer.Stop()
	case <-stopped:
		s.logger.Info("servers stopped gracefully")
	}
}

func interceptorLogger(logger *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})
}

func recoveryHandler(logger *slog.Logger) grpc_recovery.RecoveryHandlerFuncContext {
	return func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "panic recovered in grpc handler", "panic", p)
		return status.Error(codes.Internal, "internal error")
	}
}
