package storage

import (
	"context"
	"time"
)

// Subscriber is one newsletter signup.
type Subscriber struct {
	ID        string
	Email     string
	Locale    string
	Source    string
	CreatedAt time.Time
}

// SubscriberStore persists newsletter signups.
//
// PutSubscriber is idempotent on email: resubscribing keeps the original row
// and reports no error.
type SubscriberStore interface {
	Close() error
	PutSubscriber(ctx context.Context, subscriber Subscriber) error
	GetSubscriberByEmail(ctx context.Context, email string) (Subscriber, bool, error)
	CountSubscribers(ctx context.Context) (int64, error)
}
