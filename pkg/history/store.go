package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/korjavin/nutrinudge/pkg/logger"
	"github.com/korjavin/nutrinudge/pkg/models"
	"github.com/korjavin/nutrinudge/pkg/storage"
)

// LoadResult is the outcome of loading saved meals. Callers decide what to
// do when Status is not models.Loaded.
type LoadResult struct {
	Status models.LoadStatus
	Meals  []models.SavedMeal
	Err    error
}

// MealsOrEmpty returns the loaded meals, or an empty history otherwise
func (r LoadResult) MealsOrEmpty() []models.SavedMeal {
	if r.Status != models.Loaded || r.Meals == nil {
		return []models.SavedMeal{}
	}
	return r.Meals
}

// Store persists meal history
type Store interface {
	Load() LoadResult
	Save(meals []models.SavedMeal) error
}

// FileStore keeps the history in a single JSON file
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the history file
func (s *FileStore) Load() LoadResult {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadResult{Status: models.NotFound, Err: err}
		}
		return LoadResult{Status: models.ParseError, Err: fmt.Errorf("failed to read %s: %w", s.path, err)}
	}

	var meals []models.SavedMeal
	if err := json.Unmarshal(data, &meals); err != nil {
		return LoadResult{Status: models.ParseError, Err: fmt.Errorf("failed to parse %s: %w", s.path, err)}
	}
	if meals == nil {
		meals = []models.SavedMeal{}
	}
	return LoadResult{Status: models.Loaded, Meals: meals}
}

// Save overwrites the history file with meals
func (s *FileStore) Save(meals []models.SavedMeal) error {
	if meals == nil {
		meals = []models.SavedMeal{}
	}
	data, err := json.MarshalIndent(meals, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal meals: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	// Write then rename so an interrupted save leaves the old history intact
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

const mealPrefix = "meal:"

// BadgerStore keeps each meal under its own key. Saving only writes entries
// past the ones already persisted.
type BadgerStore struct {
	store  *storage.Store
	prefix string
	logger *logger.Logger
}

// NewBadgerStore creates the history store used by the command line
func NewBadgerStore(store *storage.Store) *BadgerStore {
	return &BadgerStore{
		store:  store,
		prefix: mealPrefix,
		logger: logger.New("history"),
	}
}

// NewChatStore creates a history store holding only one chat's meals
func NewChatStore(store *storage.Store, chatID int64) *BadgerStore {
	return &BadgerStore{
		store:  store,
		prefix: fmt.Sprintf("chat:%d:%s", chatID, mealPrefix),
		logger: logger.New(fmt.Sprintf("history/%d", chatID)),
	}
}

func (s *BadgerStore) key(index int) string {
	return fmt.Sprintf("%s%08d", s.prefix, index)
}

// Load reads all meals in insertion order
func (s *BadgerStore) Load() LoadResult {
	keys, err := s.store.List(s.prefix)
	if err != nil {
		return LoadResult{Status: models.ParseError, Err: err}
	}
	if len(keys) == 0 {
		return LoadResult{Status: models.NotFound, Err: storage.ErrNotFound}
	}

	meals := make([]models.SavedMeal, 0, len(keys))
	for _, key := range keys {
		var meal models.SavedMeal
		if err := s.store.Get(key, &meal); err != nil {
			return LoadResult{Status: models.ParseError, Err: fmt.Errorf("failed to read %s: %w", key, err)}
		}
		meals = append(meals, meal)
	}
	return LoadResult{Status: models.Loaded, Meals: meals}
}

// Save persists meals that are not stored yet. meals must extend the
// persisted history; earlier entries are never rewritten.
func (s *BadgerStore) Save(meals []models.SavedMeal) error {
	keys, err := s.store.List(s.prefix)
	if err != nil {
		return err
	}

	next := 0
	if len(keys) > 0 {
		last, err := strconv.Atoi(strings.TrimPrefix(keys[len(keys)-1], s.prefix))
		if err != nil {
			return fmt.Errorf("unexpected history key %q: %w", keys[len(keys)-1], err)
		}
		next = last + 1
	}

	if len(meals) < next {
		return errors.New("history is shorter than the persisted one; entries cannot be removed")
	}

	pending := make(map[string]interface{}, len(meals)-next)
	for i := next; i < len(meals); i++ {
		pending[s.key(i)] = meals[i]
	}
	if len(pending) == 0 {
		return nil
	}

	if err := s.store.SetMany(pending); err != nil {
		return fmt.Errorf("failed to save meals: %w", err)
	}
	s.logger.Debug("Saved %d new meals", len(pending))
	return nil
}
