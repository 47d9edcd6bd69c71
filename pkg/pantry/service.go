package pantry

import (
	"errors"
	"fmt"
	"time"

	"github.com/korjavin/nutrinudge/pkg/logger"
	"github.com/korjavin/nutrinudge/pkg/models"
	"github.com/korjavin/nutrinudge/pkg/storage"
)

// Service keeps the last pantry each chat sent, so follow-up commands can
// reuse it
type Service struct {
	store  *storage.Store
	logger *logger.Logger
}

// NewService creates a new pantry service
func NewService(store *storage.Store) *Service {
	return &Service{
		store:  store,
		logger: logger.New("pantry"),
	}
}

func pantryKey(chatID int64) string {
	return fmt.Sprintf("pantry:%d", chatID)
}

// Get returns the stored pantry for a chat. A chat that never sent one gets
// an empty pantry.
func (s *Service) Get(chatID int64) (Pantry, error) {
	var snapshot models.PantrySnapshot
	err := s.store.Get(pantryKey(chatID), &snapshot)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to load pantry: %w", err)
	}
	return New(snapshot.Items...), nil
}

// Replace stores p as the chat's pantry
func (s *Service) Replace(chatID int64, p Pantry) error {
	snapshot := models.PantrySnapshot{
		ChatID:      chatID,
		Items:       p.Items(),
		LastUpdated: time.Now(),
	}
	if err := s.store.Set(pantryKey(chatID), snapshot); err != nil {
		return fmt.Errorf("failed to save pantry: %w", err)
	}
	s.logger.Debug("Stored %d pantry items for chat %d", p.Len(), chatID)
	return nil
}

// AddItems merges names into the chat's pantry and returns the result
func (s *Service) AddItems(chatID int64, names []string) (Pantry, error) {
	p, err := s.Get(chatID)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		p.Add(name)
	}
	if err := s.Replace(chatID, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Clear forgets the chat's pantry
func (s *Service) Clear(chatID int64) error {
	return s.store.Delete(pantryKey(chatID))
}
