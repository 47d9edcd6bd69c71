package commands

import (
	"fmt"

	"github.com/korjavin/nutrinudge/pkg/catalog"
	"github.com/korjavin/nutrinudge/pkg/config"
	"github.com/korjavin/nutrinudge/pkg/history"
	"github.com/korjavin/nutrinudge/pkg/logger"
	"github.com/korjavin/nutrinudge/pkg/models"
	"github.com/korjavin/nutrinudge/pkg/prices"
	"github.com/korjavin/nutrinudge/pkg/recommend"
	"github.com/korjavin/nutrinudge/pkg/storage"
	"github.com/korjavin/nutrinudge/pkg/swaps"
)

// app holds everything a command needs for one run
type app struct {
	cfg         *config.Config
	recommender *recommend.Service
	history     history.Store
	store       *storage.Store
	log         *logger.Logger
}

// newApp loads the catalog, price table and history store. A missing
// catalog yields an empty one; a malformed catalog is an error.
func newApp(cfg *config.Config, needStore bool) (*app, error) {
	log := logger.Global

	res := catalog.Load(cfg.RecipesFile)
	switch res.Status {
	case models.Loaded:
		log.Debug("Loaded %d recipes from %s", len(res.Recipes), cfg.RecipesFile)
	case models.NotFound:
		log.Warn("Recipe catalog %s not found, starting with no recipes", cfg.RecipesFile)
	default:
		return nil, fmt.Errorf("failed to load recipes: %w", res.Err)
	}

	priceTable, err := prices.Load(cfg.PricesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load prices: %w", err)
	}

	a := &app{
		cfg:         cfg,
		recommender: recommend.New(res.RecipesOrEmpty(), priceTable, swaps.Default()),
		log:         log,
	}

	if needStore || cfg.HistoryBackend == config.BackendBadger {
		a.store, err = storage.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
	}

	if cfg.HistoryBackend == config.BackendBadger {
		a.history = history.NewBadgerStore(a.store)
	} else {
		a.history = history.NewFileStore(cfg.HistoryFile)
	}

	return a, nil
}

// startSession loads saved meals. A missing history starts empty; an
// unreadable one is an error so it is not overwritten on save.
func (a *app) startSession() (*history.Session, error) {
	res := a.history.Load()
	switch res.Status {
	case models.Loaded:
		a.log.Debug("Loaded %d saved meals", len(res.Meals))
	case models.NotFound:
		a.log.Debug("No saved meals found, starting with an empty list")
	default:
		return nil, fmt.Errorf("failed to load saved meals: %w", res.Err)
	}
	return history.NewSession(res.MealsOrEmpty()), nil
}

// endSession persists the session's meals
func (a *app) endSession(session *history.Session) error {
	if err := a.history.Save(session.Meals()); err != nil {
		return fmt.Errorf("failed to save meals: %w", err)
	}
	return nil
}

func (a *app) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}
