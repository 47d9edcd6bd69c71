package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/korjavin/nutrinudge/pkg/logger"
)

// Bot represents a Telegram bot instance
type Bot struct {
	api    *tgbotapi.BotAPI
	logger *logger.Logger
}

// New creates a new Telegram bot instance
func New(token string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	bot := &Bot{
		api:    api,
		logger: logger.New("telegram"),
	}

	bot.logger.Info("Telegram bot created: @%s", api.Self.UserName)
	return bot, nil
}

// Start listens for updates and answers them with the assistant until ctx
// is cancelled
func (b *Bot) Start(ctx context.Context, assistant *Assistant) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handle(ctx, assistant, update)
		}
	}
}

func (b *Bot) handle(ctx context.Context, assistant *Assistant, update tgbotapi.Update) {
	message := update.Message
	if message == nil || message.Text == "" {
		return
	}

	chatID := message.Chat.ID
	log := b.logger.With(fmt.Sprintf("%d", chatID))

	var reply string
	if message.IsCommand() {
		log.Info("Handling command: %s", message.Command())
		reply = assistant.HandleCommand(ctx, chatID, message.Command(), message.CommandArguments())
	} else {
		log.Debug("Handling pantry message")
		reply = assistant.HandleText(ctx, chatID, message.Text)
	}

	if _, err := b.SendMessage(chatID, reply); err != nil {
		log.Error("Failed to send reply: %v", err)
	}
}

// SendMessage sends a text message to a chat
func (b *Bot) SendMessage(chatID int64, text string) (tgbotapi.Message, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	return b.api.Send(msg)
}
