package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/korjavin/nutrinudge/pkg/config"
	"github.com/korjavin/nutrinudge/pkg/logger"
)

var (
	cfg *config.Config

	recipesFile    string
	pricesFile     string
	dataDir        string
	historyFile    string
	historyBackend string
	verbose        bool
)

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "nutrinudge",
		Short:        "Find recipes you can cook with what is already in your pantry",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetGlobal(logger.NewWithWriter(cmd.ErrOrStderr(), ""))

			var err error
			cfg, err = config.LoadFromEnv()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("recipes") {
				cfg.RecipesFile = recipesFile
			}
			if flags.Changed("prices") {
				cfg.PricesFile = pricesFile
			}
			if flags.Changed("data-dir") {
				cfg.DataDir = dataDir
			}
			if flags.Changed("history-file") {
				cfg.HistoryFile = historyFile
			}
			if flags.Changed("history") {
				cfg.HistoryBackend = strings.ToLower(historyBackend)
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			logger.SetLevel(logger.ParseLevel(cfg.LogLevel))

			return cfg.Validate()
		},
	}

	root.PersistentFlags().StringVar(&recipesFile, "recipes", "recipes.json", "recipe catalog (JSON)")
	root.PersistentFlags().StringVar(&pricesFile, "prices", "", "ingredient price overrides (JSON object)")
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "BadgerDB directory")
	root.PersistentFlags().StringVar(&historyFile, "history-file", "saved_meals.json", "meal history file for the file backend")
	root.PersistentFlags().StringVar(&historyBackend, "history", config.BackendFile, "meal history backend: file or badger")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(findCmd(), interactiveCmd(), historyCmd(), botCmd())
	return root
}
