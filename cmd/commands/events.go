package commands

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/google/uuid"

	"mediabridge/config"
	"mediabridge/internal/domain/entity"
	brokerRepo "mediabridge/internal/domain/repository/broker"
	"mediabridge/internal/infrastructure/broker"
)

// HandleEvents follows the entry event stream and logs every event.
func HandleEvents(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	if !cfg.BrokerEnabled() {
		ExitOnError(errors.New("BROKER_URI is not set"))
	}

	client, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := "events-" + uuid.NewString()[:8]
	logger.Info("following entry events", "stream", cfg.BrokerConfig.StreamName, "consumer", consumer)

	if err := followEvents(ctx, broker.NewReceiver(client), consumer); err != nil {
		ExitOnError(err)
	}
}

func followEvents(ctx context.Context, receiver brokerRepo.Receiver, consumer string) error {
	messages, err := receiver.Messages(ctx, consumer)
	if err != nil {
		return err
	}

	for msg := range messages {
		var event entity.EntryEvent
		if err := json.Unmarshal([]byte(msg.Body()), &event); err != nil {
			logger.Warn("skipping malformed event", "id", msg.ID(), "err", err)
		} else {
			logger.Info("entry event", "event", event.Event, "page_id", event.PageID, "at", event.At)
		}

		if err := msg.Ack(); err != nil {
			logger.Error("failed to ack event", "id", msg.ID(), "err", err)
		}
	}

	return nil
}
