package telegram

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/korjavin/nutrinudge/pkg/history"
	"github.com/korjavin/nutrinudge/pkg/logger"
	"github.com/korjavin/nutrinudge/pkg/models"
	"github.com/korjavin/nutrinudge/pkg/pantry"
	"github.com/korjavin/nutrinudge/pkg/recommend"
	"github.com/korjavin/nutrinudge/pkg/report"
	"github.com/korjavin/nutrinudge/pkg/state"
)

// maxResults caps how many recipes go into one chat reply
const maxResults = 5

// PantryParser turns a chat message into ingredient names
type PantryParser interface {
	ParsePantry(ctx context.Context, text string) ([]string, error)
}

// CommaParser splits messages on commas
type CommaParser struct{}

// ParsePantry implements PantryParser
func (CommaParser) ParsePantry(_ context.Context, text string) ([]string, error) {
	return pantry.Parse(text).Items(), nil
}

// HistoryFunc returns the meal history store of a chat
type HistoryFunc func(chatID int64) history.Store

// chatHistory is one chat's meal history session and where it is saved
type chatHistory struct {
	session *history.Session
	store   history.Store
}

// Assistant answers chat messages. It is independent of the Telegram
// transport so it can be driven directly.
type Assistant struct {
	recommender *recommend.Service
	pantries    *pantry.Service
	states      *state.Manager
	parser      PantryParser
	histories   HistoryFunc
	logger      *logger.Logger

	mu       sync.Mutex
	sessions map[int64]*chatHistory
}

// NewAssistant creates an assistant. Each chat's meal history is loaded from
// histories on first use and saved after every recommendation.
func NewAssistant(
	recommender *recommend.Service,
	pantries *pantry.Service,
	states *state.Manager,
	parser PantryParser,
	histories HistoryFunc,
) *Assistant {
	if parser == nil {
		parser = CommaParser{}
	}
	return &Assistant{
		recommender: recommender,
		pantries:    pantries,
		states:      states,
		parser:      parser,
		histories:   histories,
		logger:      logger.New("assistant"),
		sessions:    make(map[int64]*chatHistory),
	}
}

// HandleCommand answers a slash command
func (a *Assistant) HandleCommand(ctx context.Context, chatID int64, command, args string) string {
	switch command {
	case "start", "help":
		return welcomeText()
	case "diet":
		if strings.TrimSpace(args) == "" {
			a.states.SetState(chatID, state.StateAwaitingDiet)
			return "Which diet? " + dietChoices()
		}
		return a.setDiet(chatID, args)
	case "pantry":
		p, err := a.pantries.Get(chatID)
		if err != nil {
			a.logger.Error("Failed to load pantry for chat %d: %v", chatID, err)
			return "😢 Sorry, I couldn't read your pantry."
		}
		if p.Len() == 0 {
			return "Your pantry is empty. Send me your ingredients, separated by commas."
		}
		return "🧺 Your pantry: " + strings.Join(p.Items(), ", ")
	case "add":
		items := pantry.Parse(args).Items()
		if len(items) == 0 {
			return "Usage: /add tofu, bawang"
		}
		p, err := a.pantries.AddItems(chatID, items)
		if err != nil {
			a.logger.Error("Failed to update pantry for chat %d: %v", chatID, err)
			return "😢 Sorry, I couldn't update your pantry."
		}
		return "🧺 Your pantry: " + strings.Join(p.Items(), ", ")
	case "swap":
		ingredient := strings.TrimSpace(args)
		if ingredient == "" {
			return "Usage: /swap kamatis"
		}
		replacement, ok := a.recommender.Swap(ingredient)
		if !ok {
			return fmt.Sprintf("I don't know a healthier swap for %s.", ingredient)
		}
		return fmt.Sprintf("🥗 Try %s instead of %s.", replacement, ingredient)
	case "clear":
		if err := a.pantries.Clear(chatID); err != nil {
			a.logger.Error("Failed to clear pantry for chat %d: %v", chatID, err)
			return "😢 Sorry, I couldn't clear your pantry."
		}
		return "🧹 Pantry cleared."
	case "find":
		p, err := a.pantries.Get(chatID)
		if err != nil {
			a.logger.Error("Failed to load pantry for chat %d: %v", chatID, err)
			return "😢 Sorry, I couldn't read your pantry."
		}
		return a.recommend(chatID, p)
	case "history":
		h, err := a.historyFor(chatID)
		if err != nil {
			a.logger.Error("Failed to load meal history for chat %d: %v", chatID, err)
			return "😢 Sorry, I couldn't read your meal history."
		}
		meals := h.session.Meals()
		var b strings.Builder
		report.MealPlan(&b, meals)
		report.Stats(&b, history.Summarize(meals))
		return strings.TrimSpace(b.String())
	default:
		return "I don't know that command. Try /help."
	}
}

// HandleText treats a plain message as a pantry list, unless the chat is
// answering a /diet question
func (a *Assistant) HandleText(ctx context.Context, chatID int64, text string) string {
	if a.states.GetState(chatID) == state.StateAwaitingDiet {
		a.states.ClearState(chatID)
		return a.setDiet(chatID, text)
	}

	items, err := a.parser.ParsePantry(ctx, text)
	if err != nil {
		a.logger.Warn("Pantry parser failed, splitting on commas: %v", err)
		items = pantry.Parse(text).Items()
	}
	if len(items) == 0 {
		return "I couldn't find any ingredients in your message. Try something like: tofu, bawang, luya"
	}

	p := pantry.New(items...)
	if err := a.pantries.Replace(chatID, p); err != nil {
		a.logger.Error("Failed to store pantry for chat %d: %v", chatID, err)
	}
	return a.recommend(chatID, p)
}

func (a *Assistant) setDiet(chatID int64, input string) string {
	diet, ok := models.ParseDiet(input)
	if !ok {
		return fmt.Sprintf("Unknown diet %q. Choose one of: %s", strings.TrimSpace(input), dietChoices())
	}
	a.states.SetDiet(chatID, diet)
	return fmt.Sprintf("✅ Diet set to %s.", diet)
}

func (a *Assistant) recommend(chatID int64, p pantry.Pantry) string {
	if p.Len() == 0 {
		return "Your pantry is empty. Send me your ingredients, separated by commas."
	}

	diet := a.states.Diet(chatID)
	results := a.recommender.Recommend(p, diet)
	if len(results) == 0 {
		return "Sorry, no matching recipes found!"
	}

	h, err := a.historyFor(chatID)
	if err != nil {
		a.logger.Error("Failed to load meal history for chat %d: %v", chatID, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d matching recipes", len(results))
	if diet != models.DietNone {
		fmt.Fprintf(&b, " (%s)", diet)
	}
	b.WriteString(":\n\n")

	for i, r := range results {
		if i == maxResults {
			fmt.Fprintf(&b, "…and %d more.\n", len(results)-maxResults)
			break
		}
		b.WriteString(report.Short(r, a.recommender.Prices()))
		b.WriteString("\n")
		if h != nil {
			h.session.Record(r)
		}
	}

	if h != nil {
		if err := h.store.Save(h.session.Meals()); err != nil {
			a.logger.Error("Failed to save meal history for chat %d: %v", chatID, err)
		}
	}
	return strings.TrimSpace(b.String())
}

// historyFor returns the chat's meal history, loading it on first use. A
// history that cannot be read is not cached, so a later message retries.
func (a *Assistant) historyFor(chatID int64) (*chatHistory, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if h, ok := a.sessions[chatID]; ok {
		return h, nil
	}

	store := a.histories(chatID)
	res := store.Load()
	if res.Status == models.ParseError {
		return nil, res.Err
	}

	h := &chatHistory{
		session: history.NewSession(res.MealsOrEmpty()),
		store:   store,
	}
	a.sessions[chatID] = h
	return h, nil
}

func dietChoices() string {
	names := make([]string, len(models.KnownDiets))
	for i, d := range models.KnownDiets {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}

func welcomeText() string {
	return "👋 Welcome to NutriNudge!\n" +
		"Send me what's in your pantry, separated by commas, and I'll find recipes you can almost cook.\n\n" +
		"/diet <" + strings.ReplaceAll(dietChoices(), ", ", "|") + "> sets a dietary filter\n" +
		"/pantry shows your last pantry\n" +
		"/add <items> adds to it\n" +
		"/swap <ingredient> suggests a healthier swap\n" +
		"/find searches again with it\n" +
		"/clear forgets it\n" +
		"/history shows your meal plan"
}
