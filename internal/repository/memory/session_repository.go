package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"ai-catalog-be/internal/entity"
)

// SessionRepository holds logged-in sessions with a TTL so abandoned tokens
// expire without an explicit logout.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{cache: c}
}

func (r *SessionRepository) Save(session *entity.Session) {
	r.cache.Set(session.Id, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionId string) (*entity.Session, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*entity.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}
