package repository

import (
	"strings"
	"sync"
	"time"

	"serenespa/models"
)

type MemoryContactRepo struct {
	mu   sync.Mutex
	ids  idGen
	msgs []*models.ContactMessage
}

func NewMemoryContactRepo() *MemoryContactRepo {
	return &MemoryContactRepo{}
}

func (r *MemoryContactRepo) CreateMessage(msg *models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg.Email = strings.ToLower(msg.Email)
	msg.ID = r.ids.next()
	msg.CreatedAt = time.Now().UTC()
	r.msgs = append(r.msgs, msg)
	return nil
}

func (r *MemoryContactRepo) CountMessages() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.msgs)
}

func (r *MemoryContactRepo) RecentMessages(n int) []*models.ContactMessage {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.ContactMessage, 0, n)
	for i := len(r.msgs) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.msgs[i])
	}
	return out
}
