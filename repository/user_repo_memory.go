package repository

import (
	"strings"
	"sync"
	"time"

	"serenespa/models"
)

// MemoryUserRepo keeps users in process memory. The store is append-only;
// the mutex makes the uniqueness check and the append a single step.
type MemoryUserRepo struct {
	mu    sync.Mutex
	ids   idGen
	users []*models.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{}
}

func (r *MemoryUserRepo) CreateUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.Email = strings.ToLower(user.Email)
	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrEmailTaken
		}
	}

	user.ID = r.ids.next()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	r.users = append(r.users, user)
	return nil
}

// GetUserByEmail fetches a user by email, nil if not found
func (r *MemoryUserRepo) GetUserByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email = strings.ToLower(email)
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepo) CountUsers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
