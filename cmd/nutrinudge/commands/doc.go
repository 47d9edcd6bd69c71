// Package commands implements the nutrinudge command line: one-shot queries,
// the interactive prompt, meal history and the Telegram bot.
package commands
