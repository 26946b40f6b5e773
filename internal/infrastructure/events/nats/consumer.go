package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	appvideo "github.com/reelstack/catalog/internal/application/video"
	"github.com/reelstack/catalog/internal/domain/video"
	apperrors "github.com/reelstack/catalog/pkg/errors"
)

// EncodedMessage is the encoder callback payload delivered on the encoded
// subject.
type EncodedMessage struct {
	VideoID  string `json:"video_id"`
	MediaID  string `json:"media_id"`
	Status   string `json:"status"`
	Folder   string `json:"folder"`
	Filename string `json:"filename"`
	Error    string `json:"error,omitempty"`
}

// EncodedConsumer drives the media status use case from encoder callbacks.
type EncodedConsumer struct {
	client       *Client
	updateStatus *appvideo.UpdateMediaStatusUseCase
	logger       *zap.Logger
	subject      string
	maxDeliver   int
	ackWait      time.Duration
}

// NewEncodedConsumer creates a consumer for encoder status callbacks.
func NewEncodedConsumer(
	client *Client,
	updateStatus *appvideo.UpdateMediaStatusUseCase,
	logger *zap.Logger,
) *EncodedConsumer {
	return &EncodedConsumer{
		client:       client,
		updateStatus: updateStatus,
		logger:       logger.Named("encoded-consumer"),
		subject:      client.config.NATS.EncodedQueue,
		maxDeliver:   5,
		ackWait:      30 * time.Second,
	}
}

// Start creates the durable consumer and processes messages until the
// context is cancelled.
func (c *EncodedConsumer) Start(ctx context.Context) error {
	consumer, err := c.client.JetStream().CreateOrUpdateConsumer(ctx, c.client.config.NATS.Stream, jetstream.ConsumerConfig{
		Durable:       "catalog-encoded",
		Description:   "Consumer for encoder status callbacks",
		FilterSubject: c.subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.ackWait,
		MaxDeliver:    c.maxDeliver,
		ReplayPolicy:  jetstream.ReplayInstantPolicy,
		DeliverPolicy: jetstream.DeliverAllPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create encoded consumer: %w", err)
	}

	c.logger.Info("encoded consumer started", zap.String("subject", c.subject))

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("encoded consumer stopping")
			return nil
		default:
			msgs, err := consumer.Fetch(1, jetstream.FetchMaxWait(5*time.Second))
			if err != nil {
				if !errors.Is(err, context.DeadlineExceeded) {
					c.logger.Error("failed to fetch messages", zap.Error(err))
					time.Sleep(1 * time.Second)
				}
				continue
			}
			for msg := range msgs.Messages() {
				c.processMessage(ctx, msg)
			}
		}
	}
}

func (c *EncodedConsumer) processMessage(ctx context.Context, msg jetstream.Msg) {
	var payload EncodedMessage
	if err := json.Unmarshal(msg.Data(), &payload); err != nil {
		c.logger.Error("failed to unmarshal encoded message",
			zap.Error(err),
			zap.String("subject", msg.Subject()),
		)
		// Malformed payloads never become valid, drop them.
		msg.Ack()
		return
	}

	err := c.updateStatus.Execute(ctx, appvideo.UpdateMediaStatusCommand{
		Status:   video.MediaStatus(payload.Status),
		VideoID:  payload.VideoID,
		MediaID:  payload.MediaID,
		Folder:   payload.Folder,
		Filename: payload.Filename,
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.logger.Warn("encoded callback for unknown video",
				zap.String("video_id", payload.VideoID),
				zap.String("media_id", payload.MediaID),
			)
			msg.Ack()
			return
		}
		c.logger.Error("failed to apply media status",
			zap.Error(err),
			zap.String("video_id", payload.VideoID),
			zap.String("media_id", payload.MediaID),
		)
		c.handleMessageError(msg)
		return
	}

	if err := msg.Ack(); err != nil {
		c.logger.Error("failed to acknowledge message",
			zap.Error(err),
			zap.String("video_id", payload.VideoID),
		)
	}
}

func (c *EncodedConsumer) handleMessageError(msg jetstream.Msg) {
	metadata, _ := msg.Metadata()
	if metadata != nil && metadata.NumDelivered >= uint64(c.maxDeliver) {
		c.logger.Warn("dropping message after max deliveries",
			zap.String("subject", msg.Subject()),
			zap.Uint64("deliveries", metadata.NumDelivered),
		)
		msg.Ack()
		return
	}
	msg.Nak()
}
