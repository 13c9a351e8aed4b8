package container

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"turtlewax/migrator/internal/config"
	"turtlewax/migrator/internal/report"
	"turtlewax/migrator/internal/service"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Command is one migration step exposed as a binary under cmd/.
type Command func(s *service.Service, ctx context.Context) (*report.Report, error)

// Execute loads configuration from the working directory, runs command and exits
// non-zero on any error.
func Execute(name string, command Command) {
	log.Infof("Starting %s...", name)

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("Unknown log level %q, keeping %s", cfg.Log.Level, log.GetLevel())
	}
	log.Info("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg, afero.NewOsFs())
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	rep, err := command(app.Service, ctx)
	app.Close()
	if rep != nil {
		log.Infof("📊 %s", rep.Summary())
	}
	if err != nil {
		log.Fatalf("%s failed: %v", name, err)
	}

	log.Infof("✅ %s finished successfully", name)
}
