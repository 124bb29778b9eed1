package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/yuckyman/PiMO/internal/cache"
	"github.com/yuckyman/PiMO/internal/config"
	"github.com/yuckyman/PiMO/internal/display"
	"github.com/yuckyman/PiMO/internal/domain"
	"github.com/yuckyman/PiMO/internal/engine"
	"github.com/yuckyman/PiMO/internal/fetcher"
	"github.com/yuckyman/PiMO/internal/lastfm"
	"github.com/yuckyman/PiMO/internal/metrics"
	"github.com/yuckyman/PiMO/internal/notify"
	"github.com/yuckyman/PiMO/internal/pet"
	"github.com/yuckyman/PiMO/internal/render"
	"github.com/yuckyman/PiMO/internal/server"
)

// AppOptions is the dependency graph shared by main and the graph
// validity test. Logger and config are supplied by the caller.
var AppOptions = fx.Options(
	fx.Provide(
		newLastFMClient,
		func(c *lastfm.Client) domain.TrackSource { return c },
		func(c *lastfm.Client) domain.StatsSource { return c },
		func(log *zap.Logger) domain.Fetcher { return fetcher.NewHTTPFetcher(log) },
		newArtworkStore,
		newTrackStore,
		newNotifier,
		newPet,
		newDisplay,
		render.NewRenderer,
		engine.NewFrame,
		metrics.New,
		engine.NewEngine,
		server.New,
	),
	fx.Invoke(registerHooks),
)

func main() {
	flags := pflag.NewFlagSet("pimo-daemon", pflag.ContinueOnError)
	preview := flags.BoolP("preview", "p", false, "save frames to preview.png instead of the LCD")
	browser := flags.BoolP("browser", "b", false, "serve a browser preview of the display")
	port := flags.Int("port", 0, "preview server port (default 8080)")
	brightness := flags.Int("brightness", -1, "initial backlight brightness, 0-100")
	help := flags.BoolP("help", "h", false, "print usage and exit")

	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: pimo-daemon [interval] [flags]")
		fmt.Fprintln(os.Stderr, "  interval: poll interval in seconds (default: 30)")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		os.Exit(1)
	}
	if *help {
		flags.Usage()
		os.Exit(0)
	}

	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(logger)
	if err != nil {
		// Missing credentials are fatal at startup, with a corrective
		// message rather than a retry.
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "set LASTFM_API_KEY and LASTFM_USERNAME in the environment or a .env file")
		os.Exit(1)
	}

	applyFlags(cfg, flags.Args(), *preview, *browser, *port, *brightness)

	app := fx.New(
		fx.Supply(logger, cfg),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		AppOptions,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		logger.Error("Startup failed", zap.Error(err))
		os.Exit(1)
	}

	<-ctx.Done()

	if err := app.Stop(context.Background()); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
		os.Exit(1)
	}
}

// applyFlags folds CLI arguments over the environment configuration
func applyFlags(cfg *config.AppConfig, args []string, preview, browser bool, port, brightness int) {
	if len(args) > 0 {
		if secs, err := strconv.Atoi(args[0]); err == nil && secs > 0 {
			cfg.PollInterval = time.Duration(secs) * time.Second
		}
	}
	cfg.Preview = preview
	cfg.Browser = browser
	if port > 0 {
		cfg.Port = port
	}
	if brightness >= 0 {
		cfg.Brightness = display.ClampBrightness(brightness)
	}
}

// newLogger creates the zap logger for the whole process
func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func newLastFMClient(log *zap.Logger, cfg *config.AppConfig) *lastfm.Client {
	return lastfm.NewClient(log, cfg.APIKey, cfg.Username)
}

func newArtworkStore(log *zap.Logger, f domain.Fetcher, cfg *config.AppConfig) domain.ArtworkStore {
	return cache.NewArtworkCache(log, f, cfg.CacheDir)
}

func newTrackStore(log *zap.Logger, cfg *config.AppConfig) domain.TrackStore {
	return cache.NewTrackCache(log, cfg.CacheDir)
}

func newNotifier(log *zap.Logger, cfg *config.AppConfig) domain.Notifier {
	return notify.NewDiscordNotifier(log, cfg.WebhookURL)
}

func newPet(log *zap.Logger, n domain.Notifier, cfg *config.AppConfig) *pet.Pet {
	return pet.New(log, n, cfg.CacheDir)
}

func newDisplay(log *zap.Logger, cfg *config.AppConfig) (domain.Display, error) {
	return display.New(log, cfg.Preview, cfg.Brightness)
}

// registerHooks wires component lifecycles into the fx app
func registerHooks(
	lc fx.Lifecycle,
	logger *zap.Logger,
	cfg *config.AppConfig,
	e *engine.Engine,
	p *pet.Pet,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: e.Start,
		OnStop:  e.Stop,
	})
	lc.Append(fx.Hook{
		OnStart: p.Start,
		OnStop:  p.Stop,
	})

	if cfg.Browser {
		lc.Append(fx.Hook{
			OnStart: srv.Start,
			OnStop:  srv.Stop,
		})
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("PiMO daemon started",
				zap.String("user", cfg.Username),
				zap.Bool("preview", cfg.Preview),
				zap.Bool("browser", cfg.Browser))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			return nil
		},
	})
}
