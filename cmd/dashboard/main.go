package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/archive"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/chainstate"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/dashboard"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/gateway"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/mempool"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/mining"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"github.com/gorilla/mux"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var config struct {
	Addr            string        `long:"addr" env:"DASHBOARD_ADDR" description:"gRPC addr" default:":8000"`
	RestAddr        string        `long:"rest-addr" env:"DASHBOARD_REST_ADDR" description:"rest addr" default:":8001"`
	Network         string        `long:"network" env:"DASHBOARD_NETWORK" description:"bitcoin network" default:"mainnet"`
	ExplorerURL     string        `long:"explorer-url" env:"DASHBOARD_EXPLORER_URL" description:"explorer API base, derived from the network when empty"`
	RecentBlocksURL string        `long:"recent-blocks-url" env:"DASHBOARD_RECENT_BLOCKS_URL" description:"recent blocks endpoint read by the chain store, may be this service's /blocks; <explorer-url>/blocks when empty"`
	HTTPTimeout     time.Duration `long:"http-timeout" env:"DASHBOARD_HTTP_TIMEOUT" description:"explorer request timeout" default:"15s"`
	RPS             int           `long:"rps" env:"DASHBOARD_RPS" description:"explorer requests per second, 0 disables the limit" default:"20"`
	RefreshInterval time.Duration `long:"refresh-interval" env:"DASHBOARD_REFRESH_INTERVAL" description:"refresh cycle period" default:"30s"`
	PageSize        int           `long:"page-size" env:"DASHBOARD_PAGE_SIZE" description:"pending transactions per page" default:"20"`
	FetchWorkers    int           `long:"fetch-workers" env:"DASHBOARD_FETCH_WORKERS" description:"concurrent transaction fetches per page" default:"8"`
	MiningTick      time.Duration `long:"mining-tick" env:"DASHBOARD_MINING_TICK" description:"mining simulation tick" default:"1s"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"DASHBOARD_CLICKHOUSE_DSN" description:"archive blocks and mining outcomes when set"`
	ZMQAddr         string        `long:"zmq-addr" env:"DASHBOARD_ZMQ_ADDR" description:"bitcoind zmqpubhashblock endpoint (zmq builds only)"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	network := model.Network(config.Network)
	baseURL := config.ExplorerURL
	if baseURL == "" {
		if baseURL, err = network.ExplorerURL(); err != nil {
			logger.Fatal("Resolve explorer url", zap.Error(err))
		}
	}
	logger = logger.With(zap.String("network", string(network)))

	explorer, err := gateway.NewClient(
		&http.Client{Timeout: config.HTTPTimeout},
		gateway.Config{BaseURL: baseURL, RecentBlocksURL: config.RecentBlocksURL, RPS: config.RPS},
		metrics.NewGateway(network),
		logger,
	)
	if err != nil {
		logger.Fatal("Create explorer client", zap.Error(err))
	}

	store := chainstate.NewStore(explorer, metrics.NewChainStore(network), logger)
	pool := mempool.NewController(explorer, metrics.NewMempool(network), mempool.Options{
		PageSize: config.PageSize,
		Workers:  config.FetchWorkers,
	}, logger)

	miningCfg := mining.DefaultConfig()
	miningCfg.TickInterval = config.MiningTick
	var engineOpts []mining.Option
	var serviceOpts []dashboard.Option

	if config.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			logger.Fatal("Create clickhouse repository", zap.Error(err))
		}
		defer func() {
			_ = repo.Close()
		}()

		blocks := archive.NewBlockArchiver(repo, network, archive.DefaultBlockBatch, logger)
		blocks.Start(context.WithoutCancel(ctx))
		defer blocks.Stop()

		serviceOpts = append(serviceOpts, dashboard.WithBlockArchive(blocks))
		engineOpts = append(engineOpts, mining.WithOutcomeHandler(archive.NewOutcomeArchiver(repo, network, logger)))
	}

	signalCh, err := startBlockSignal(ctx, config.ZMQAddr, logger)
	if err != nil {
		logger.Fatal("Start block signal", zap.Error(err))
	}
	if signalCh != nil {
		serviceOpts = append(serviceOpts, dashboard.WithBlockSignal(signalCh))
	}

	engine := mining.NewEngine(miningCfg, metrics.NewMining(), logger, engineOpts...)
	svc := dashboard.NewService(store, pool, engine, config.RefreshInterval, logger, serviceOpts...)

	runDone := make(chan struct{})
	go func() {
		defer close(runDone)
		if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Dashboard stopped", zap.Error(err))
		}
	}()

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	blockinsight7000v1.RegisterExplorerServiceServer(grpcServer, transport.NewExplorerHandler(store))

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	gw := gwruntime.NewServeMux()
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if err := blockinsight7000v1.RegisterExplorerServiceHandlerFromEndpoint(ctx, gw, config.Addr, opts); err != nil {
		logger.Fatal("Register explorer handler", zap.Error(err))
	}

	router := mux.NewRouter()
	router.Handle("/blocks", transport.NewBlocksProxyHandler(explorer, logger)).Methods(http.MethodGet)
	transport.NewDashboardHandler(svc, logger).Register(router, "/api")
	router.Handle("/metrics", promhttp.Handler())
	router.PathPrefix("/").Handler(gw)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	})

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           corsHandler.Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      config.HTTPTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr), zap.String("explorer", explorer.BaseURL()))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
	stop()
	<-runDone
}
