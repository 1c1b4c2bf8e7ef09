package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpctx "github.com/dayboard/dayboard-server/internal/api/http/context"
	"github.com/dayboard/dayboard-server/internal/api/http/router"
	httpServer "github.com/dayboard/dayboard-server/internal/api/http/server"
	"github.com/dayboard/dayboard-server/internal/config"
	"github.com/dayboard/dayboard-server/internal/email"
	"github.com/dayboard/dayboard-server/internal/feed"
	"github.com/dayboard/dayboard-server/internal/logger"
	"github.com/dayboard/dayboard-server/internal/model"
	"github.com/dayboard/dayboard-server/internal/repository/postgres"
	"github.com/dayboard/dayboard-server/internal/server"
	"github.com/dayboard/dayboard-server/internal/service"
	"github.com/dayboard/dayboard-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	verificationRepo := postgres.NewVerificationRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	feedRepo := postgres.NewFeedRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.AuthKey, cfg.JWT.RefreshKey, cfg.JWT.AuthLifespan, cfg.JWT.RefreshLifespan)
	sender := email.NewSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	feedClient := feed.NewClient(cfg.Feed.ImageURL, cfg.Feed.ImageKey, cfg.Feed.QuoteURL)
	ctxMgr := httpctx.NewManager()

	authService := service.NewAuth(userRepo, verificationRepo, tokenManager, sender, logger)
	taskService := service.NewTask(taskRepo, logger)
	feedService := service.NewFeed(feedRepo, feedRepo, feedClient, logger)

	r := router.New(authService, taskService, feedService, authService, db, ctxMgr, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
