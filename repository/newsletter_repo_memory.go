package repository

import (
	"strings"
	"sync"
	"time"

	"serenespa/models"
)

type MemoryNewsletterRepo struct {
	mu   sync.Mutex
	subs []*models.NewsletterSubscription
}

func NewMemoryNewsletterRepo() *MemoryNewsletterRepo {
	return &MemoryNewsletterRepo{}
}

// Subscribe adds an email to the list. Uniqueness is case-insensitive.
func (r *MemoryNewsletterRepo) Subscribe(sub *models.NewsletterSubscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub.Email = strings.ToLower(sub.Email)
	for _, s := range r.subs {
		if s.Email == sub.Email {
			return ErrAlreadySubscribed
		}
	}

	sub.SubscribedAt = time.Now().UTC()
	r.subs = append(r.subs, sub)
	return nil
}

func (r *MemoryNewsletterRepo) CountSubscriptions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}
