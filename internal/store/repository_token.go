package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository]. The "auth_tokens" table is the user's token list:
// one row per live session, ordered by creation time.
//
// Every mutation is a single statement, so concurrent logins and logouts for
// the same user never race inside the service; the database's own row-level
// concurrency control is sufficient.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// AddToken appends a {purpose, token} pair to the user's token list.
func (r *tokenRepository) AddToken(ctx context.Context, userID, purpose, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, addToken, userID, purpose, token); err != nil {
		log.Err(err).Str("func", "*tokenRepository.AddToken").Str("user_id", userID).Msg("error: adding token failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// HasToken reports whether the exact token string is present in the user's
// token list with the given purpose. Revocation is list membership: a token
// with a valid signature that has been removed from the list is dead.
func (r *tokenRepository) HasToken(ctx context.Context, userID, purpose, token string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, hasToken, userID, purpose, token)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*tokenRepository.HasToken").Str("user_id", userID).Msg("error: token lookup failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// DeleteToken removes the exact token string from the user's token list.
// Deleting an absent token affects zero rows and is not an error, which makes
// logout idempotent.
func (r *tokenRepository) DeleteToken(ctx context.Context, userID, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteToken, userID, token); err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteToken").Str("user_id", userID).Msg("error: deleting token failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpiredTokens removes every token row issued before cutoff and
// reports how many rows were removed.
func (r *tokenRepository) DeleteExpiredTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, deleteExpiredTokens, cutoff)
	if err != nil {
		r.logger.Err(err).Str("func", "*tokenRepository.DeleteExpiredTokens").Msg("error: deleting expired tokens failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return removed, nil
}
