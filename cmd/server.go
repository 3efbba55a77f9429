package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"

	"github.com/Splochev/eth-fetcher/internal/config"
	"github.com/Splochev/eth-fetcher/internal/core"
	"github.com/Splochev/eth-fetcher/internal/db"
	"github.com/Splochev/eth-fetcher/internal/ethereum"
	"github.com/Splochev/eth-fetcher/internal/http/handler"
	"github.com/Splochev/eth-fetcher/internal/http/handler/middleware"
	"github.com/Splochev/eth-fetcher/internal/http/payload"
	"github.com/Splochev/eth-fetcher/internal/http/server"
	"github.com/Splochev/eth-fetcher/internal/repository"
	"github.com/Splochev/eth-fetcher/pkg/jwt"
	"github.com/Splochev/eth-fetcher/pkg/log"
)

func Start() error {
	logger := log.NewZapLogger("eth-fetcher", zapcore.InfoLevel)

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	// repository
	repo := repository.NewTransactionRepository(dbConn)

	if err = repo.MigrateAndSeed(context.Background()); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	client, err := ethclient.Dial(cfg.NodeURL)
	if err != nil {
		logger.Errorw("eth node connection failed", "error", err)
		return err
	}

	ethService := ethereum.NewEthService(client)

	// core
	fetcher := core.NewFetcher(
		logger,
		repo,
		jwtService,
		ethService)

	// handler
	fetchHlr := handler.NewFetchHandler(
		logger,
		payload.DecodeValidator{},
		fetcher)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.Authenticate, fetchHlr.HandleAuthenticate)
	mux.HandleFunc(handler.GetTransactions, fetchHlr.HandleGetTransactions)
	mux.HandleFunc(handler.GetTransactionsBatch, fetchHlr.HandleGetTransactionsBatch)
	mux.HandleFunc(handler.GetMyTransactions, fetchHlr.HandleGetMyTransactions)
	mux.HandleFunc(handler.GetAllTransactions, fetchHlr.HandleGetAllTransactions)
	mux.Handle("GET /metrics", promhttp.Handler())

	// middleware
	hdlr := middleware.NewTimeoutMiddleware(cfg.RequestTimeout).Timeout(mux)
	hdlr = middleware.NewMetricsMiddleware().Metrics(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
