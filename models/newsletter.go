package models

import "time"

type NewsletterSubscription struct {
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
