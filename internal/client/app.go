package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/tui"
	"github.com/MKhiriev/go-task-keeper/models"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	localStore, err := store.NewClientStorages(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(localStore, serverAdapter, logger)

	ui, err := tui.New(services, logger)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{services: services, tui: ui, logger: logger}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	session, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoSavedSession) && !errors.Is(err, service.ErrSessionExpired) {
			return fmt.Errorf("restore session: %w", err)
		}

		session, err = a.loginFlow(ctx)
		if err != nil {
			return err
		}
	}

	logout, err := a.tui.MainLoop(ctx, session)
	if err != nil {
		return err
	}
	if logout {
		// пользователь вышел из аккаунта — начинаем заново с экрана входа
		return a.Run()
	}

	return nil
}

func (a *App) loginFlow(ctx context.Context) (models.Session, error) {
	session, err := a.tui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return models.Session{}, err
		}
		return models.Session{}, fmt.Errorf("login flow: %w", err)
	}

	return session, nil
}
