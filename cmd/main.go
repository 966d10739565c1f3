package main

import (
	"context"
	"fmt"
	grpc2 "message-board/grpc"
	"message-board/grpc/server"
	"message-board/internal"
	"message-board/observability"
	"message-board/repositories"
	"message-board/runtime/workers"
	"message-board/services"
	"message-board/storage"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until a signal or a server error.
// Deferred cleanups (Badger close, worker stop) run before main exits.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := storage.Open(storage.Options{Path: config.BadgerFilepath, InMemory: config.InMemory}, log)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Record store & service
	messageRepository, err := repositories.NewMessageRepository(db, log, config.StoreLimits())
	if err != nil {
		return err
	}
	messageService := services.NewMessageService(log, messageRepository, uuid.NewString, time.Now)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Background workers
	monitoring := observability.NewMonitoringManager()
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewValueLogGCWorker(log, db, config.GCInterval),
		workers.NewHeartbeatWorker(log, db, monitoring, config.HeartbeatInterval),
	)
	supervisorDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervisorDone)
	}()

	if config.DebugPort > 0 {
		internal.StartDebugServer(ctx, log, config.DebugPort,
			internal.NewDebugRouter(db, internal.MessageMapper, monitoring.AsMap))
	}

	// 6. gRPC Server Setup
	address := config.Address()
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc2.NewServer(log, monitoring)
	grpc2.RegisterMessageServiceServer(s, server.NewMessageServer(messageService))

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		sup.Stop()
		<-supervisorDone
		return err
	}

	// 8. Final Cleanup
	s.GracefulStop()
	sup.Stop()
	<-supervisorDone
	log.Info("Program stopped cleanly")

	return nil
}
