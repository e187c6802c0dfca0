package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/pkg/logger"
	"ai-catalog-be/internal/repository/contract"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService applies download events to the product counter off the
// request path.
type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	productRepo contract.ProductRepository
	log         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	productRepo contract.ProductRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		productRepo: productRepo,
		log:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ProductDownloadedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal download event", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack invalid messages to prevent infinite retry.
		msg.Ack()
		return
	}

	product, err := cs.productRepo.FindById(ctx, payload.ProductId)
	if err != nil {
		cs.log.Error("consumer", "failed to load product", map[string]interface{}{
			"product_id": payload.ProductId,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}
	if product == nil {
		// Product deleted between download and processing. Ack.
		msg.Ack()
		return
	}

	product.DownloadCount++
	if err := cs.productRepo.Update(ctx, product); err != nil {
		cs.log.Error("consumer", "failed to bump download count", map[string]interface{}{
			"product_id": payload.ProductId,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
