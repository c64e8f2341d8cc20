package settings

import (
	"context"
	"errors"
)

// ErrStoreUnavailable is returned when the backing store cannot be reached.
var ErrStoreUnavailable = errors.New("settings store unavailable")

// Settings holds per-chat preferences the response builder consumes.
type Settings struct {
	ChatID   int64    `json:"chat_id"`
	Fiat     []string `json:"fiat"`
	Crypto   []string `json:"crypto"`
	Language string   `json:"language"`
	UseQuote bool     `json:"use_quote"`
}

// Defaults returns the settings a chat has before anyone changes anything.
func Defaults(chatID int64) Settings {
	return Settings{
		ChatID:   chatID,
		Fiat:     []string{"USD", "EUR", "RUB"},
		Crypto:   []string{"BTC", "ETH", "TON"},
		Language: "ru",
		UseQuote: true,
	}
}

// Store persists chat settings. Get returns Defaults for chats that were
// never saved.
type Store interface {
	Get(ctx context.Context, chatID int64) (Settings, error)
	Put(ctx context.Context, s Settings) error
}
