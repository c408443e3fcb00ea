package repository

import "serenespa/models"

// NewsletterRepository defines the interface for newsletter signups
type NewsletterRepository interface {
	Subscribe(sub *models.NewsletterSubscription) error
	CountSubscriptions() int
}
