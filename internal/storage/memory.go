package storage

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
)

type threadKey struct {
	sessionID string
	agentID   models.AgentID
}

type MemoryStorage struct {
	mu       sync.RWMutex
	profiles map[string]*models.Profile
	threads  map[threadKey][]models.Message
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		profiles: make(map[string]*models.Profile),
		threads:  make(map[threadKey][]models.Message),
	}
}

// Profile methods
func (s *MemoryStorage) SaveProfile(ctx context.Context, p *models.Profile) error {
	if p == nil || p.UserID == "" {
		return fmt.Errorf("%w: profile without user id", models.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[p.UserID] = p.Clone()
	return nil
}

func (s *MemoryStorage) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, exists := s.profiles[userID]; exists {
		return p.Clone(), nil
	}
	return nil, models.ErrNotFound
}

func (s *MemoryStorage) UpdateProfile(ctx context.Context, userID string, fn func(p *models.Profile) error) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.profiles[userID]
	if !exists {
		return nil, models.ErrNotFound
	}

	updated := current.Clone()
	if err := fn(updated); err != nil {
		return nil, err
	}
	// The key never moves, whatever fn did to the id.
	updated.UserID = userID
	s.profiles[userID] = updated
	return updated.Clone(), nil
}

// Thread methods
func (s *MemoryStorage) AppendMessage(ctx context.Context, sessionID string, msg models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := threadKey{sessionID: sessionID, agentID: msg.AgentID}
	s.threads[key] = append(s.threads[key], msg)
	return nil
}

func (s *MemoryStorage) GetThread(ctx context.Context, sessionID string, agentID models.AgentID) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if thread, exists := s.threads[threadKey{sessionID: sessionID, agentID: agentID}]; exists {
		return slices.Clone(thread), nil
	}
	return []models.Message{}, nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
