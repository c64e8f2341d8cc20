package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore persists chat settings in PostgreSQL.
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func (p *PGStore) Get(ctx context.Context, chatID int64) (Settings, error) {
	const q = `
        select chat_id, fiat, crypto, language, use_quote
        from chat_settings
        where chat_id = $1;
    `

	var s Settings
	if err := p.pool.QueryRow(ctx, q, chatID).Scan(
		&s.ChatID,
		&s.Fiat,
		&s.Crypto,
		&s.Language,
		&s.UseQuote,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Defaults(chatID), nil
		}
		return Settings{}, fmt.Errorf("failed to select settings for chat %d: %w", chatID, err)
	}

	return s, nil
}

func (p *PGStore) Put(ctx context.Context, s Settings) error {
	const q = `
        insert into chat_settings (chat_id, fiat, crypto, language, use_quote)
        values ($1, $2, $3, $4, $5)
        on conflict (chat_id) do update
        set fiat = excluded.fiat,
            crypto = excluded.crypto,
            language = excluded.language,
            use_quote = excluded.use_quote,
            updated_at = now();
    `

	if _, err := p.pool.Exec(ctx, q, s.ChatID, s.Fiat, s.Crypto, s.Language, s.UseQuote); err != nil {
		return fmt.Errorf("failed to upsert settings for chat %d: %w", s.ChatID, err)
	}
	return nil
}
