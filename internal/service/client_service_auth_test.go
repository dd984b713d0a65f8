package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestClientAuthSvc — хелпер для создания clientAuthService с моками
func newTestClientAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientAuthService,
	*mock.MockServerAdapter,
	*mock.MockSessionRepository,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	storages := &store.ClientStorages{SessionRepository: mockSessions}

	svc := NewClientAuthService(storages, mockAdapter, logger.Nop()).(*clientAuthService)
	svc.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }

	return svc, mockAdapter, mockSessions
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	credentials := models.Credentials{Email: "alice@example.com", Password: "hunter22"}
	user := models.User{UserID: "0198f9a2-0000-7000-8000-000000000001", Email: credentials.Email}

	gomock.InOrder(
		mockAdapter.EXPECT().Register(ctx, credentials).Return(user, nil),
		mockAdapter.EXPECT().Token().Return("signed-token"),
		mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				assert.Equal(t, user.UserID, s.UserID)
				assert.Equal(t, user.Email, s.Email)
				assert.Equal(t, "signed-token", s.Token)
				return nil
			},
		),
	)

	session, err := svc.Register(ctx, credentials)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, session.UserID)
	assert.Equal(t, "signed-token", session.Token)
}

func TestClientAuthService_Register_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	credentials := models.Credentials{Email: "alice@example.com", Password: "hunter22"}

	mockAdapter.EXPECT().Register(ctx, credentials).Return(models.User{}, errors.New("server unavailable"))

	_, err := svc.Register(ctx, credentials)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegisterOnServer)
}

func TestClientAuthService_Register_SaveSessionErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	credentials := models.Credentials{Email: "alice@example.com", Password: "hunter22"}
	user := models.User{UserID: "0198f9a2-0000-7000-8000-000000000001", Email: credentials.Email}

	mockAdapter.EXPECT().Register(ctx, credentials).Return(user, nil)
	mockAdapter.EXPECT().Token().Return("signed-token")
	mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).Return(errors.New("disk full"))

	// сессия в памяти всё равно рабочая
	session, err := svc.Register(ctx, credentials)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", session.Token)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	credentials := models.Credentials{Email: "alice@example.com", Password: "hunter22"}
	user := models.User{UserID: "0198f9a2-0000-7000-8000-000000000001", Email: credentials.Email}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, credentials).Return(user, nil),
		mockAdapter.EXPECT().Token().Return("signed-token"),
		mockSessions.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil),
	)

	session, err := svc.Login(ctx, credentials)
	require.NoError(t, err)
	assert.Equal(t, user.Email, session.Email)
	assert.Equal(t, "signed-token", session.Token)
}

func TestClientAuthService_Login_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	credentials := models.Credentials{Email: "alice@example.com", Password: "wrong"}

	mockAdapter.EXPECT().Login(ctx, credentials).
		Return(models.User{}, fmt.Errorf("%w: wrong email or password", adapter.ErrBadRequest))

	_, err := svc.Login(ctx, credentials)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginOnServer)
}

// ── RestoreSession ───────────────────────────────────────────────────────────

func TestClientAuthService_RestoreSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	saved := models.Session{
		UserID: "0198f9a2-0000-7000-8000-000000000001",
		Email:  "alice@example.com",
		Token:  "saved-token",
	}
	user := models.User{UserID: saved.UserID, Email: saved.Email}

	gomock.InOrder(
		mockSessions.EXPECT().GetSession(ctx).Return(saved, nil),
		mockAdapter.EXPECT().SetToken("saved-token"),
		mockAdapter.EXPECT().Me(ctx).Return(user, nil),
	)

	session, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.Token, session.Token)
	assert.Equal(t, user.Email, session.Email)
}

func TestClientAuthService_RestoreSession_NothingSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().GetSession(ctx).Return(models.Session{}, store.ErrNoSavedSession)

	_, err := svc.RestoreSession(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNoSavedSession)
}

func TestClientAuthService_RestoreSession_ExpiredTokenDropsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	saved := models.Session{Token: "stale-token"}

	gomock.InOrder(
		mockSessions.EXPECT().GetSession(ctx).Return(saved, nil),
		mockAdapter.EXPECT().SetToken("stale-token"),
		mockAdapter.EXPECT().Me(ctx).Return(models.User{}, fmt.Errorf("%w: token is expired", adapter.ErrUnauthorized)),
		mockSessions.EXPECT().DeleteSession(ctx).Return(nil),
		mockAdapter.EXPECT().SetToken(""),
	)

	_, err := svc.RestoreSession(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientAuthService_RestoreSession_ServerUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	saved := models.Session{Token: "saved-token"}

	// сервер недоступен — сессию НЕ удаляем, она может быть ещё валидной
	mockSessions.EXPECT().GetSession(ctx).Return(saved, nil)
	mockAdapter.EXPECT().SetToken("saved-token")
	mockAdapter.EXPECT().Me(ctx).Return(models.User{}, errors.New("connection refused"))

	_, err := svc.RestoreSession(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionExpired)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Logout(ctx).Return(nil),
		mockSessions.EXPECT().DeleteSession(ctx).Return(nil),
	)

	require.NoError(t, svc.Logout(ctx))
}

func TestClientAuthService_Logout_AlreadyRevokedTokenIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Logout(ctx).Return(fmt.Errorf("%w: token is expired", adapter.ErrUnauthorized))
	mockSessions.EXPECT().DeleteSession(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
}

func TestClientAuthService_Logout_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Logout(ctx).Return(errors.New("connection refused"))

	require.Error(t, svc.Logout(ctx))
}
