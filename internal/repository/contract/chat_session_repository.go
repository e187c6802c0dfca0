package contract

import (
	"context"
	"time"

	"ai-catalog-be/internal/entity"
)

// ChatSessionRepository stores the append-only question log used for the
// per-device daily quota.
type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	CountForDeviceBetween(ctx context.Context, deviceId string, from, to time.Time) (int, error)
}
