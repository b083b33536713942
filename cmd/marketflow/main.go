package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"marketflow/internal/application"
	"marketflow/internal/bootstrap"
	"marketflow/internal/config"
	httpserver "marketflow/internal/infrastructure/http"
	"marketflow/internal/infrastructure/imagecache"
	"marketflow/internal/infrastructure/logx"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L()
	cfg := config.Load()
	addr := ":" + cfg.Port

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gateway := bootstrap.BuildGateway(cfg)
	store, closeStore := bootstrap.BuildSnapshotStore(cfg)
	defer closeStore()

	repo := application.NewExchangeRepo(gateway, store)
	list := application.NewExchangeListEngine(repo, logger, application.WithPageSize(cfg.PageSize))
	list.Subscribe(func(st application.SyncState) {
		logger.Info("sync_state", zap.String("phase", string(st.Phase)), zap.String("error", st.Err))
	})

	images, err := imagecache.New(cfg.ImageCacheBytes, &http.Client{Timeout: cfg.RequestTimeout})
	if err != nil {
		logger.Fatal("image cache init", zap.Error(err))
	}
	defer images.Close()

	srv := httpserver.NewServer(ctx, list, repo, gateway, images, cfg.CoinLimit)
	mux := httpserver.NewRouter(srv)

	list.Start(ctx)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		logger.Info("server started", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}
