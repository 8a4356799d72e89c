package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/lending-service/lending/config"
	"github.com/Astemirdum/lending-service/lending/internal/catalog"
	"github.com/Astemirdum/lending-service/lending/internal/copies"
	"github.com/Astemirdum/lending-service/lending/internal/handler"
	"github.com/Astemirdum/lending-service/lending/internal/loans"
	"github.com/Astemirdum/lending-service/lending/internal/notify"
	"github.com/Astemirdum/lending-service/lending/internal/repository"
	"github.com/Astemirdum/lending-service/lending/internal/repository/file"
	pgrepo "github.com/Astemirdum/lending-service/lending/internal/repository/postgres"
	"github.com/Astemirdum/lending-service/lending/internal/server"
	"github.com/Astemirdum/lending-service/lending/internal/service"
	"github.com/Astemirdum/lending-service/lending/migrations"
	"github.com/Astemirdum/lending-service/pkg/circuit_breaker"
	"github.com/Astemirdum/lending-service/pkg/kafka"
	"github.com/Astemirdum/lending-service/pkg/logger"
	"github.com/Astemirdum/lending-service/pkg/postgres"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "lending")
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := newRepository(ctx, cfg, log)
	if err != nil {
		log.Fatal("repository init", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Error("repository close", zap.Error(err))
		}
	}()

	notifier, closeNotifier, err := newNotifier(cfg, log)
	if err != nil {
		log.Fatal("notifier init", zap.Error(err))
	}
	defer closeNotifier()

	svc := NewLendingService(ctx, repo, notifier, log)
	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)),
			zap.String("storage", cfg.Storage))
		return srv.Run()
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err = g.Wait(); err != nil {
		log.Error("server", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}

// NewLendingService loads the ledgers from repo, cross-wires them and reconciles
// catalog availability with the loan and copy ledgers.
func NewLendingService(ctx context.Context, repo repository.Repository, notifier notify.Notifier, log *zap.Logger, opts ...service.Option) *service.Service {
	cat := catalog.New(ctx, repo, log)
	cp := copies.New(ctx, repo, cat, log)
	ln := loans.New(ctx, repo, cat, log, loans.WithUsers(repo))
	cat.SetCopyCounter(cp)
	cat.SetLoanIndex(ln)
	if err := cat.RefreshAll(ctx); err != nil {
		log.Error("reconcile availability", zap.Error(err))
	}
	return service.NewService(cat, cp, ln, repo, notify.NewHub(log), notifier, log, opts...)
}

func newRepository(ctx context.Context, cfg config.Config, log *zap.Logger) (repository.Repository, error) {
	if cfg.Storage != config.StoragePostgres {
		return file.NewRepository(cfg.Files, log), nil
	}
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return nil, err
	}
	return pgrepo.NewRepository(db, log), nil
}

func newNotifier(cfg config.Config, log *zap.Logger) (notify.Notifier, func(), error) {
	if !cfg.Kafka.Enabled() {
		log.Info("kafka not configured, availability notices are only logged")
		return notify.NewLogNotifier(log), func() {}, nil
	}
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return nil, nil, err
	}
	cb := circuit_breaker.New(circuit_breaker.Config{
		Window:        cfg.Notify.BreakerWindow,
		Timeout:       cfg.Notify.BreakerTimeout,
		FailureRatio:  cfg.Notify.BreakerRatio,
		RecoveryCalls: cfg.Notify.BreakerRecover,
	})
	closeFn := func() {
		if err := producer.Close(); err != nil {
			log.Error("kafka producer close", zap.Error(err))
		}
	}
	topic := cfg.Notify.Topic
	if topic == "" {
		topic = kafka.ItemAvailableTopic
	}
	return notify.NewMailNotifier(producer, cb, topic, log), closeFn, nil
}
