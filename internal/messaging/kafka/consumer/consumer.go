package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Ishani018/alms-ishani/internal/events"
	"github.com/Ishani018/alms-ishani/internal/leavebalance"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// NewUserRegisteredReader builds the group reader for the registration topic.
func NewUserRegisteredReader(broker, groupID string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          events.UserRegisteredTopic,
		GroupID:        groupID,
		CommitInterval: time.Second,
		StartOffset:    kafkago.FirstOffset,
	})
}

// ConsumeUserRegistered seeds the default leave ledger for each newly
// registered user. Initialize is idempotent, so replayed events are safe.
func ConsumeUserRegistered(
	ctx context.Context,
	reader *kafkago.Reader,
	balanceService leavebalance.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.user_registered")
	log.Info("user registered consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("user registered consumer stopped")
				return
			}
			log.Error("fetch user_registered message failed", zap.Error(err))
			continue
		}

		var event events.UserRegisteredEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode user_registered event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		year := event.OccurredAt.UTC().Year()
		if year == 1 {
			year = time.Now().UTC().Year()
		}

		if err := balanceService.Initialize(ctx, event.UserID, year); err != nil {
			log.Error("initialize leave balance failed",
				zap.String("user_id", event.UserID),
				zap.Int("year", year),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit user_registered message failed", zap.Error(err))
			continue
		}

		log.Info("leave balance seeded from user_registered event",
			zap.String("user_id", event.UserID),
			zap.Int("year", year),
		)
	}
}
