package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/meditations/pkg/bridge"
	"github.com/umputun/meditations/pkg/cache"
	"github.com/umputun/meditations/pkg/config"
	"github.com/umputun/meditations/pkg/content"
	"github.com/umputun/meditations/pkg/db"
	"github.com/umputun/meditations/pkg/imagegen"
	"github.com/umputun/meditations/pkg/notify"
	"github.com/umputun/meditations/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting meditations version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, &opts); err != nil {
		log.Printf("[ERROR] meditations failed: %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	log.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until the context is canceled
func run(ctx context.Context, opts *Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	database, err := db.New(ctx, db.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer database.Close()

	sessions := server.NewSessions()

	cacheManager := cache.NewManager(database, sessions, cache.Config{
		Upstream:  cfg.Upstream.URL,
		Version:   cfg.Cache.Version,
		Resources: cfg.Cache.Resources,
		Timeout:   cfg.Upstream.Timeout,
	})

	// install failure is fatal, the whole lifecycle retries on next start
	if err := cacheManager.Install(ctx); err != nil {
		return fmt.Errorf("cache install: %w", err)
	}
	if err := cacheManager.Activate(ctx); err != nil {
		return fmt.Errorf("cache activate: %w", err)
	}

	msgBridge := bridge.New(16, cfg.Notifications.AckTimeout)
	defer msgBridge.Close()

	source := content.NewSource(cacheManager, cfg.Notifications.ContentPath)
	notifier := notify.NewLogNotifier()
	permissions := notify.NewStoredPermissions(database)

	worker := notify.NewWorker(msgBridge, source, notifier, sessions, notify.WorkerConfig{
		BasePath: cfg.Server.BasePath,
		DeepLink: cfg.Notifications.DeepLink,
		Title:    cfg.Notifications.Title,
		Icon:     cfg.Notifications.Icon,
		Badge:    cfg.Notifications.Badge,
	})

	scheduler := notify.NewScheduler(ctx, database, permissions, msgBridge)

	params := server.Params{
		Config:    cfg,
		Scheduler: scheduler,
		Fetcher:   cacheManager,
		Content:   source,
		Clicks:    worker,
		Sessions:  sessions,
		Version:   revision,
		Debug:     opts.Debug,
	}
	if generator := imagegen.NewGenerator(imagegen.Config{
		Endpoint: cfg.ImageGen.Endpoint,
		APIKey:   cfg.ImageGen.APIKey,
		Model:    cfg.ImageGen.Model,
		Size:     cfg.ImageGen.Size,
	}); generator != nil {
		params.Images = generator
	}
	srv := server.New(params)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		worker.Run(gctx)
		return nil
	})
	g.Go(func() error {
		scheduler.Run(gctx)
		return nil
	})
	g.Go(func() error {
		return srv.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("service failed: %w", err)
	}

	// let pending cache write-through tasks settle before closing the db
	cacheManager.WaitWrites()
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
