package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZJUSCT/CSRANK/internal/api/admin"
	"github.com/ZJUSCT/CSRANK/internal/api/user"
	"github.com/ZJUSCT/CSRANK/internal/config"
	"github.com/ZJUSCT/CSRANK/internal/contest"
	"github.com/ZJUSCT/CSRANK/internal/database"
	"github.com/ZJUSCT/CSRANK/internal/pubsub"
	"github.com/ZJUSCT/CSRANK/internal/report"
	"github.com/ZJUSCT/CSRANK/internal/scoreboard"

	"go.uber.org/zap"
)

var Version = "dev-build"

func main() {

	fmt.Fprintf(os.Stderr, "ZJUSCT CSRANK %s - Live Contest Scoreboard & Ranking Service\n\n", Version)

	// config
	var configPath string
	flag.StringVar(&configPath, "c", "configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// logger
	var logger *zap.Logger
	if cfg.Logger.Level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// database (audit store)
	db, err := database.Init(cfg.Storage.Database)
	if err != nil {
		zap.S().Fatalf("failed to initialize database: %v", err)
	}
	zap.S().Info("database initialized successfully")

	// reporter chain: live stream + audit recorder (+ optional redis mirror)
	broker := pubsub.New()
	reporters := []scoreboard.ScoreChangeReporter{
		report.NewPublisher(broker),
		report.NewRecorder(db),
	}
	if cfg.Redis.Enabled {
		mirror := report.NewMirror(cfg.Redis)
		defer mirror.Close()
		reporters = append(reporters, mirror)
		zap.S().Infof("redis standings mirror enabled at %s", cfg.Redis.Addr)
	}

	engine := scoreboard.NewEngine(report.Multi(reporters...))

	// optional contest preload: registers teams and starts the competition
	var def *contest.Contest
	if cfg.Contest != "" {
		def, err = contest.Load(cfg.Contest)
		if err != nil {
			zap.S().Fatalf("failed to load contest definition: %v", err)
		}
		if err := contest.Apply(def, engine); err != nil {
			zap.S().Fatalf("failed to apply contest definition: %v", err)
		}
	}

	// API routers
	userEngine := user.NewUserRouter(cfg, db, engine, broker, def)
	adminEngine := admin.NewAdminRouter(cfg, db, engine, broker)

	// start servers
	go func() {
		zap.S().Infof("starting public server at %s", cfg.Listen)
		if err := userEngine.Run(cfg.Listen); err != nil {
			zap.S().Fatalf("failed to start public server: %v", err)
		}
	}()

	if cfg.Admin.Enabled {
		go func() {
			zap.S().Infof("starting admin server at %s", cfg.Admin.Listen)
			if err := adminEngine.Run(cfg.Admin.Listen); err != nil {
				zap.S().Fatalf("failed to start admin server: %v", err)
			}
		}()
	}

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Info("shutting down server...")
}
