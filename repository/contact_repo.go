package repository

import "serenespa/models"

// ContactRepository defines the interface for contact message operations
type ContactRepository interface {
	CreateMessage(msg *models.ContactMessage) error
	CountMessages() int
	RecentMessages(n int) []*models.ContactMessage
}
