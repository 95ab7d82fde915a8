package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"mediabridge"
	"mediabridge/config"
	"mediabridge/internal/application/usecase"
	brokerRepository "mediabridge/internal/domain/repository/broker"
	minioRepository "mediabridge/internal/domain/repository/minio"
	"mediabridge/internal/infrastructure/broker"
	"mediabridge/internal/infrastructure/grpcserver"
	"mediabridge/internal/infrastructure/metrics"
	"mediabridge/internal/infrastructure/minio"
	"mediabridge/internal/infrastructure/notion"
	"mediabridge/internal/presentation/handler"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running mediabridge", "version", mediabridge.StringVersion())

	notionClient, err := notion.New(cfg.Notion, &http.Client{})
	if err != nil {
		ExitOnError(err)
	}

	var publisher brokerRepository.Publisher = brokerRepository.NopPublisher{}
	if cfg.BrokerEnabled() {
		brokerClient, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close()

		publisher = broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	}

	var (
		minIOUploader minioRepository.Uploader
		minIORemover  minioRepository.Remover
	)
	if cfg.ArchiveEnabled() {
		minIOClient, err := minio.New(&cfg.MinIOClient)
		if err != nil {
			ExitOnError(err)
		}
		if err := minIOClient.EnsureBucket(context.Background(), cfg.MinIOUploader.Bucket); err != nil {
			ExitOnError(fmt.Errorf("prepare archive bucket: %w", err))
		}

		minIOUploader = minio.NewUploader(minIOClient.MinioClient, &cfg.MinIOUploader)
		minIORemover = minio.NewRemover(minIOClient.MinioClient, &cfg.MinIORemover)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	recorder, err := metrics.New(registry)
	if err != nil {
		ExitOnError(err)
	}

	e := handler.NewRouter(handler.RouterConfig{
		BodyLimit: cfg.HTTPServer.BodyLimit,
		RateLimit: cfg.HTTPServer.RateLimit,
		AccessLog: cfg.HTTPServer.AccessLog,
		Recorder:  recorder,
		Gatherer:  registry,
	}, handler.Usecases{
		Uploader: usecase.NewUploader(notionClient, publisher, minIOUploader, minIORemover, recorder,
			cfg.Uploader),
		URLAdder:  usecase.NewURLAdder(notionClient, publisher, recorder),
		Lister:    usecase.NewLister(notionClient, notionClient, recorder, cfg.Listing),
		Deleter:   usecase.NewDeleter(notionClient, publisher, recorder),
		Inspector: usecase.NewInspector(notionClient),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var grpcServer *grpcserver.Server
	if cfg.GRPCServer.Port != 0 {
		grpcServer = grpcserver.New(cfg.GRPCServer)
		go func() {
			if err := grpcServer.Start(); err != nil {
				ExitOnError(fmt.Errorf("grpc health server: %w", err))
			}
		}()
	}

	go func() {
		if err := e.Start(cfg.HTTPServer.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down mediabridge")

	if grpcServer != nil {
		grpcServer.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}
}
