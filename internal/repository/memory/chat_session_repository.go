package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ai-catalog-be/internal/entity"
	"ai-catalog-be/internal/repository/contract"
)

type ChatSessionRepository struct {
	table *Table[entity.ChatSession]
}

var _ contract.ChatSessionRepository = &ChatSessionRepository{}

func NewChatSessionRepository() *ChatSessionRepository {
	return &ChatSessionRepository{table: NewTable[entity.ChatSession]()}
}

func (r *ChatSessionRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	session.Id = uuid.NewString()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	r.table.Insert(session.Id, *session)
	return nil
}

func (r *ChatSessionRepository) CountForDeviceBetween(ctx context.Context, deviceId string, from, to time.Time) (int, error) {
	n := r.table.Count(func(s entity.ChatSession) bool {
		return s.DeviceId == deviceId && !s.CreatedAt.Before(from) && s.CreatedAt.Before(to)
	})
	return n, nil
}
