package main

import (
	"ChordDHT/internal/bootstrap"
	"ChordDHT/internal/client"
	"ChordDHT/internal/config"
	"ChordDHT/internal/domain"
	"ChordDHT/internal/logger"
	zapfactory "ChordDHT/internal/logger/zap"
	"ChordDHT/internal/node"
	"ChordDHT/internal/routingtable"
	"ChordDHT/internal/server"
	"ChordDHT/internal/storage"
	"ChordDHT/internal/telemetry"
	"ChordDHT/internal/telemetry/lookuptrace"
	"context"
	"flag"
	"log"
	"math/big"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

var defaultConfigPath = "config/node/config.yaml"

func main() {
	// Parse command-line flags
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load configuration from %q: %v", *configPath, err)
	}
	cfg.ApplyEnvOverrides()
	// Validate configuration
	if err := cfg.ValidateConfig(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// Initialize logger
	var lgr logger.Logger
	if cfg.Logger.Active {
		zapLog, err := zapfactory.New(cfg.Logger)
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() { _ = zapLog.Sync() }()   // flush logger buffers before exit
		lgr = zapfactory.NewZapAdapter(zapLog) // adapt zap.Logger to logger.Interface
	} else {
		lgr = &logger.NopLogger{} // no-op logger
	}

	// Initialize listener (to determine server address and port)
	lis, advertised, err := server.Listen(cfg.DHT.Mode, cfg.Node.Bind, cfg.Node.Host, cfg.Node.Port)
	if err != nil {
		lgr.Error("Fatal: failed to initialize listener", logger.F("err", err))
		os.Exit(1)
	}
	defer func() { _ = lis.Close() }() // close listener on shutdown
	addr := lis.Addr().String()
	lgr.Debug("create listener", logger.F("addr", addr))

	// Initialize the identifier space
	space, err := domain.NewSpace(cfg.DHT.IDBits)
	if err != nil {
		lgr.Error("failed to initialize identifier space", logger.F("err", err))
		os.Exit(1)
	}
	lgr.Debug("identifier space initialized", logger.F("id_bits", space.Bits), logger.F("byte_len", space.ByteLen))

	// Initialize the local node's identity. In bootstrap.mode=directory,
	// prefer an id allocated by the name service's pick_free_chord_id
	// over hashing our own address, so the directory's
	// view of which ids are taken stays authoritative; any failure to
	// reach the directory for this falls back to the address hash.
	var id domain.ID
	if cfg.Node.Id == "" && cfg.DHT.Bootstrap.Mode == "directory" {
		idCtx, idCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if db, dialErr := bootstrap.NewDirectoryBootstrap(cfg.DHT.Bootstrap.DirectoryAddr); dialErr == nil {
			if picked, pickErr := db.PickFreeChordID(idCtx, cfg.DHT.IDBits); pickErr == nil {
				id = picked
			} else {
				lgr.Warn("pick_free_chord_id failed, falling back to address hash", logger.F("err", pickErr))
			}
			_ = db.Close()
		} else {
			lgr.Warn("could not reach directory for id allocation, falling back to address hash", logger.F("err", dialErr))
		}
		idCancel()
	}
	if id == nil {
		if cfg.Node.Id == "" {
			id = space.NewIdFromString(advertised) // derive ID from advertised address
		} else {
			// a configured id is taken mod N, so oversized values wrap
			// instead of failing startup
			raw := strings.TrimPrefix(strings.TrimPrefix(cfg.Node.Id, "0x"), "0X")
			v, ok := new(big.Int).SetString(raw, 16)
			if !ok {
				lgr.Error("invalid node ID in configuration", logger.F("id", cfg.Node.Id))
				os.Exit(1)
			}
			id = space.FromBigInt(v)
		}
	}
	domainNode := domain.Node{
		ID:   id,
		Addr: advertised,
	}
	lgr.Debug("generated node ID", logger.F("id", id.ToHexString(true)))
	lgr = lgr.Named("node").WithNode(domainNode)
	lgr.Info("New Node initializing")

	// Log loaded configuration at DEBUG level (after the logger carries
	// the node's own identity, so every line is attributable).
	cfg.LogConfig(lgr)

	// Initialize Telemetry (if enabled)
	shutdown := telemetry.InitTracer(cfg.Telemetry, "ChordDHT-Node", id)
	defer shutdown(context.Background())

	// Initialize the routing table
	rt := routingtable.New(
		&domainNode,
		space,
		routingtable.WithLogger(lgr.Named("routingtable")),
	)
	lgr.Debug("initialized routing table")

	// Initialize the RPC connection manager
	cp := client.New(
		cfg.DHT.Stabilization.FailureTimeout,
		5*time.Minute,
	)
	defer cp.Close()
	lgr.Debug("initialized rpc connection manager")

	// Initialize the storage
	store := storage.NewMemoryStore(
		space,
		cfg.DHT.Storage.Capacity,
		lgr.Named("storage"),
	)
	lgr.Debug("initialized in-memory storage")

	// Initialize the node
	n := node.New(
		&domainNode,
		space,
		rt,
		store,
		cp,
		node.WithLogger(lgr),
		node.WithStabilization(cfg.DHT.JoinMode == "incremental"),
		node.WithRPCTimeout(cfg.DHT.Stabilization.FailureTimeout),
		node.WithStabilizeInterval(cfg.DHT.Stabilization.StabilizeInterval),
		node.WithFixFingersInterval(cfg.DHT.Stabilization.FixFingersInterval),
		node.WithCheckPredecessorInterval(cfg.DHT.Stabilization.CheckPredecessorInterval),
	)
	lgr.Debug("initialized new struct node")

	// Initialize the gRPC server
	var grpcOpts []grpc.ServerOption
	if cfg.Telemetry.Tracing.Enabled {
		grpcOpts = append(grpcOpts,
			grpc.StatsHandler(otelgrpc.NewServerHandler()),
			grpc.ChainUnaryInterceptor(
				lookuptrace.ServerInterceptor(),
			),
		)
		lgr.Debug("gRPC tracing enabled")
	}

	s, err := server.New(
		lis,
		n,
		grpcOpts,
		server.WithLogger(lgr.Named("server")),
	)
	if err != nil {
		lgr.Error("failed to initialize gRPC server", logger.F("err", err))
		os.Exit(1)
	}
	lgr.Debug("initialized gRPC server")

	// Run server in background
	serveErr := make(chan error, 1)
	go func() { serveErr <- s.Start() }()
	lgr.Debug("server started")

	// Build the bootstrap backend named by dht.bootstrap.mode
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	boot, err := bootstrap.New(bootCtx, cfg.DHT.Bootstrap, lgr.Named("bootstrap"))
	bootCancel()
	if err != nil {
		lgr.Error("failed to initialize bootstrap backend", logger.F("err", err))
		s.Stop()
		n.Stop()
		os.Exit(1)
	}

	// Discover existing peers, then join an existing ring or start a new one
	discoverCtx, discoverCancel := context.WithTimeout(context.Background(), 10*time.Second)
	peers, err := boot.Discover(discoverCtx)
	discoverCancel()
	if err != nil {
		lgr.Error("failed to resolve bootstrap peers", logger.F("err", err))
		s.Stop()
		n.Stop()
		os.Exit(1)
	}
	lgr.Info("resolved bootstrap peers", logger.F("peers", peers))

	joinCtx, joinCancel := context.WithTimeout(context.Background(), 30*time.Second)
	candidates := make([]string, 0, len(peers))
	for _, p := range peers {
		if p != advertised { // never join through our own address
			candidates = append(candidates, p)
		}
	}
	var anchor *domain.Node
	if len(candidates) > 0 {
		// any live node can anchor a join; picking at random spreads
		// join load instead of hammering whichever peer lists first
		anchor = &domain.Node{Addr: candidates[rand.Intn(len(candidates))]}
	}
	err = n.Join(joinCtx, anchor)
	joinCancel()
	if err != nil {
		lgr.Error("failed to join DHT", logger.F("err", err))
		s.Stop()
		n.Stop()
		os.Exit(1)
	}
	if anchor != nil {
		lgr.Debug("joined DHT", logger.F("anchor", anchor.Addr))
	} else {
		lgr.Debug("started a new DHT ring")
	}

	// Register this node in the shared directory, if the backend supports it
	registerCtx, registerCancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = boot.Register(registerCtx, &domainNode)
	registerCancel()
	if err != nil {
		lgr.Warn("failed to register node", logger.F("err", err))
	} else {
		lgr.Info("node registered successfully")
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := boot.Deregister(ctx, &domainNode); err != nil {
				lgr.Warn("failed to deregister node", logger.F("err", err))
			}
		}()
	}

	// Setup signal handler for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// Start the periodic maintenance workers. The atomic join path
	// resolves every finger up front and never revisits them, so the
	// workers only run in incremental mode.
	if cfg.DHT.JoinMode == "incremental" {
		n.StartStabilizers()
		lgr.Debug("stabilization workers started")
	}

	gracefulStop := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()

		select {
		case <-done:
			lgr.Info("server stopped gracefully")
		case <-shutdownCtx.Done():
			lgr.Warn("graceful stop timed out, forcing shutdown")
			s.Stop()
		}

		n.Stop() // stop background stabilization workers
	}

	select {
	case <-ctx.Done():
		lgr.Info("shutdown signal received, stopping server gracefully...")
		stop()

		if err := n.Disconnect(context.Background()); err != nil {
			lgr.Warn("graceful disconnect failed", logger.F("err", err))
		}
		gracefulStop()

	case <-n.Disconnected():
		// The client API's Disconnect RPC already ran the ring-level
		// departure; all that's left is taking the process down.
		lgr.Info("disconnect requested via client API, shutting down...")
		stop()
		gracefulStop()

	case err := <-serveErr:
		lgr.Error("gRPC server terminated unexpectedly", logger.F("err", err))
		stop()
		n.Stop()
		os.Exit(1)
	}
}
