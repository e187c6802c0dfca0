package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"

	"ai-catalog-be/internal/constant"
	"ai-catalog-be/internal/dto"
	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/repository/memory"
)

func newConsumerFixture() (*consumerService, *memory.Store) {
	store := memory.NewStore()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	cs := NewConsumerService(pubSub, constant.DownloadTopicName, store.Products, nopLogger{}).(*consumerService)
	return cs, store
}

func downloadMessage(t *testing.T, productId string) *message.Message {
	t.Helper()
	payload, err := json.Marshal(dto.ProductDownloadedMessage{ProductId: productId, AttachmentId: "att-1"})
	assert.NoError(t, err)
	return message.NewMessage(watermill.NewUUID(), payload)
}

func TestProcessMessageBumpsDownloadCount(t *testing.T) {
	cs, store := newConsumerFixture()
	ctx := context.Background()

	product := &entity.Product{Name: "Pair Assistant", Slug: "pair-assistant", IsActive: true}
	assert.NoError(t, store.Products.Create(ctx, product))

	cs.processMessage(ctx, downloadMessage(t, product.Id))
	cs.processMessage(ctx, downloadMessage(t, product.Id))

	stored, err := store.Products.FindById(ctx, product.Id)
	assert.NoError(t, err)
	assert.Equal(t, 2, stored.DownloadCount)
}

func TestProcessMessageUnknownProduct(t *testing.T) {
	cs, _ := newConsumerFixture()

	// Must ack and move on, not panic or retry forever.
	cs.processMessage(context.Background(), downloadMessage(t, "gone"))
}

func TestProcessMessageInvalidPayload(t *testing.T) {
	cs, _ := newConsumerFixture()

	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	cs.processMessage(context.Background(), msg)
}
