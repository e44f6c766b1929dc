package storage

import (
	"context"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
)

type Storage interface {
	ProfileStore
	ThreadStorage
	Close() error
}

// ProfileStore keeps career profiles keyed by user id.
type ProfileStore interface {
	// SaveProfile stores p, replacing any profile with the same user id.
	SaveProfile(ctx context.Context, p *models.Profile) error
	// GetProfile returns models.ErrNotFound when no profile is stored.
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	// UpdateProfile runs fn on the stored profile and saves the result.
	// fn runs under the store lock; returning an error discards the change.
	UpdateProfile(ctx context.Context, userID string, fn func(p *models.Profile) error) (*models.Profile, error)
}

// ThreadStorage keeps per-persona message threads of a session. Threads are append only.
type ThreadStorage interface {
	AppendMessage(ctx context.Context, sessionID string, msg models.Message) error
	GetThread(ctx context.Context, sessionID string, agentID models.AgentID) ([]models.Message, error)
}
