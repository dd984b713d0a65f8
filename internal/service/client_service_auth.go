package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger

	now func() time.Time
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, logger: logger, now: time.Now}
}

func (a *clientAuthService) Register(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	user, err := a.adapter.Register(ctx, credentials)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	return a.saveSession(ctx, user), nil
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	user, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	return a.saveSession(ctx, user), nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.SessionRepository.GetSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	a.adapter.SetToken(session.Token)

	user, err := a.adapter.Me(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			// сессия протухла — выбрасываем её из локального хранилища
			if deleteErr := a.localStore.SessionRepository.DeleteSession(ctx); deleteErr != nil {
				a.logger.Warn().Err(deleteErr).Str("func", "RestoreSession").Msg("error deleting stale session")
			}
			a.adapter.SetToken("")
			return models.Session{}, fmt.Errorf("%w: %v", ErrSessionExpired, err)
		}
		return models.Session{}, fmt.Errorf("verify saved session: %w", err)
	}

	session.UserID = user.UserID
	session.Email = user.Email

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.adapter.Logout(ctx); err != nil && !errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("logout on server: %w", err)
	}

	if err := a.localStore.SessionRepository.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete saved session: %w", err)
	}

	return nil
}

// saveSession persists the freshly issued token locally. A failure to save is
// logged but not fatal: the in-memory session is still usable for this run.
func (a *clientAuthService) saveSession(ctx context.Context, user models.User) models.Session {
	session := models.Session{
		UserID:  user.UserID,
		Email:   user.Email,
		Token:   a.adapter.Token(),
		SavedAt: a.now(),
	}

	if err := a.localStore.SessionRepository.SaveSession(ctx, session); err != nil {
		a.logger.Warn().Err(err).Str("func", "saveSession").Msg("error saving session to local store")
	}

	return session
}
