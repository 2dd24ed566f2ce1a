package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	v1alpha1 "github.com/KirkDiggler/aus-world/internal/handlers/slotdata/v1alpha1"
	"github.com/KirkDiggler/aus-world/internal/orchestrators/generation"
	"github.com/KirkDiggler/aus-world/internal/pkg/idgen"
)

var (
	grpcPort     int
	redisAddrs   string
	slotDataTTL  time.Duration
	serverPlayer []string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC slot data server",
	Long: `Start the gRPC server that serves stored slot data. Player files given with
--player are generated at startup into a fresh seed.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddrs, "redis", "", "comma separated redis endpoints (empty keeps slot data in memory)")
	serverCmd.Flags().DurationVar(&slotDataTTL, "slot-data-ttl", 0, "expire stored slot data after this long (0 keeps it)")
	serverCmd.Flags().StringSliceVar(&serverPlayer, "player", nil, "player YAML file to generate at startup (repeatable)")
}

func runServer(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	repo, closeRepo, err := newSlotDataRepo(redisAddrs, slotDataTTL)
	if err != nil {
		return err
	}
	defer closeRepo()

	generationService, err := generation.NewOrchestrator(&generation.Config{
		SlotDataRepo: repo,
		IDGenerator:  idgen.NewUUID("AUS"),
	})
	if err != nil {
		return fmt.Errorf("failed to create generation service: %w", err)
	}

	if len(serverPlayer) > 0 {
		players, err := loadPlayers(serverPlayer)
		if err != nil {
			return err
		}
		out, err := generationService.Generate(ctx, &generation.GenerateInput{Players: players})
		if err != nil {
			return fmt.Errorf("failed to generate startup seed: %w", err)
		}
		log.Printf("Generated seed %s with %d players", out.SeedName, len(out.Slots))
	}

	slotDataHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		GenerationService: generationService,
	})
	if err != nil {
		return fmt.Errorf("failed to create slot data handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterSlotDataServiceServer(srv, slotDataHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d...", grpcPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
