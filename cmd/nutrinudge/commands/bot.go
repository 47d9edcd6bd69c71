package commands

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/korjavin/nutrinudge/pkg/history"
	"github.com/korjavin/nutrinudge/pkg/openai"
	"github.com/korjavin/nutrinudge/pkg/pantry"
	"github.com/korjavin/nutrinudge/pkg/state"
	"github.com/korjavin/nutrinudge/pkg/telegram"
)

// bot: answer pantry messages on Telegram until interrupted.
func botCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireBot(); err != nil {
				return err
			}

			a, err := newApp(cfg, true)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.store.StartGCRoutine(ctx, 10*time.Minute)

			var parser telegram.PantryParser = telegram.CommaParser{}
			if cfg.OpenAIEnabled() {
				parser = openai.New(cfg.OpenAIAPIKey, cfg.OpenAIAPIBase, cfg.OpenAIModel)
				a.log.Info("Parsing pantry messages with %s", cfg.OpenAIModel)
			}

			// Chat history lives in Badger next to the pantries, whatever
			// backend the command line uses
			assistant := telegram.NewAssistant(
				a.recommender,
				pantry.NewService(a.store),
				state.New(),
				parser,
				func(chatID int64) history.Store { return history.NewChatStore(a.store, chatID) },
			)

			bot, err := telegram.New(cfg.BotToken)
			if err != nil {
				return err
			}

			a.log.Info("Bot is now running with %d recipes. Press CTRL-C to exit.", a.recommender.CatalogSize())
			if err := bot.Start(ctx, assistant); err != nil {
				return err
			}

			a.log.Info("Shutting down...")
			return nil
		},
	}
}
