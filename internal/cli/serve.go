package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solidarmap/internal/database"
	"solidarmap/internal/monitoring"
	"solidarmap/internal/server"
	"solidarmap/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var consumeEvents bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API.

Change events are published to RabbitMQ when RABBITMQ_URL is set. With
--consume-events the process also consumes the event queue and logs every event.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&consumeEvents, "consume-events", false, "Consume and log change events from the queue")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("failed to close database")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}

	deps := server.Dependencies{
		DB:            db,
		Log:           log,
		Metrics:       monitoring.New(),
		HashPasswords: cfg.HashPasswords,
	}

	// --- Initialize RabbitMQ Client ---
	if cfg.RabbitMQ.URL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Queue: cfg.RabbitMQ.Queue}, log)
		if err != nil {
			return err
		}
		defer mqClient.Close()
		deps.Events = mqClient

		if consumeEvents {
			if err := mqClient.ConsumeEvents(logEvent); err != nil {
				return err
			}
			log.WithField("queue", cfg.RabbitMQ.Queue).Info("consuming change events")
		}
	} else {
		if consumeEvents {
			return errors.New("--consume-events requires RABBITMQ_URL")
		}
		log.Info("RABBITMQ_URL not set, change events are disabled")
	}

	app := server.NewApp(deps)

	listenErr := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.AppPort).Info("starting server")
		listenErr <- app.Listen(cfg.AppPort)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
	log.Info("server gracefully stopped")
	return nil
}

func logEvent(event rabbitmq.Event) error {
	log.WithFields(logrus.Fields{
		"event_id":  event.ID,
		"type":      event.Type,
		"entity_id": event.EntityID,
	}).Info("change event received")
	return nil
}
