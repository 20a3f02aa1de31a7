// Command nameservice runs the directory / linker: the
// single logical process nodes register under `node.<type>.<id>` and
// resolve each other through. Grounded on cmd/node/main.go's
// listen/register-service/signal-handle/graceful-stop sequence,
// applied to the directory service instead of a chord node.
package main

import (
	v1 "ChordDHT/internal/api/directory/v1"
	"ChordDHT/internal/config"
	"ChordDHT/internal/directory"
	"ChordDHT/internal/logger"
	zapfactory "ChordDHT/internal/logger/zap"
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
)

func main() {
	bind := flag.String("bind", ":4000", "address the directory service listens on")
	level := flag.String("log-level", "info", "zap log level")
	encoding := flag.String("log-encoding", "console", "zap encoding: console or json")
	flag.Parse()

	zapLog, err := zapfactory.New(config.LoggerConfig{
		Active:   true,
		Level:    *level,
		Encoding: *encoding,
		Mode:     "stdout",
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLog.Sync() }()
	lgr := zapfactory.NewZapAdapter(zapLog).Named("nameservice")

	lis, err := net.Listen("tcp", *bind)
	if err != nil {
		lgr.Error("failed to listen", logger.F("err", err))
		os.Exit(1)
	}
	defer func() { _ = lis.Close() }()
	lgr.Info("directory listening", logger.F("addr", lis.Addr().String()))

	d := directory.New(lgr.Named("registry"))
	grpcServer := grpc.NewServer()
	v1.RegisterDirectoryServer(grpcServer, d)

	serveErr := make(chan error, 1)
	go func() { serveErr <- grpcServer.Serve(lis) }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		lgr.Info("shutdown signal received, stopping gracefully...")
		done := make(chan struct{})
		go func() { grpcServer.GracefulStop(); close(done) }()
		select {
		case <-done:
			lgr.Info("directory stopped gracefully")
		case <-time.After(5 * time.Second):
			lgr.Warn("graceful stop timed out, forcing shutdown")
			grpcServer.Stop()
		}
	case err := <-serveErr:
		lgr.Error("directory server terminated unexpectedly", logger.F("err", err))
		os.Exit(1)
	}
}
