package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestGetUserFromContext(t *testing.T) {
	user := models.User{UserID: "0191c2a8-1111-7def-8000-0242ac120002", Email: "a@x.com"}
	ctx := context.WithValue(context.Background(), UserCtxKey, user)

	got, ok := GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")

	_, ok := GetUserFromContext(ctx)
	assert.False(t, ok)
}

func TestGetTokenFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TokenCtxKey, "signed.jwt.token")

	token, ok := GetTokenFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "signed.jwt.token", token)
}

func TestGetTokenFromContext_Missing(t *testing.T) {
	_, ok := GetTokenFromContext(context.Background())
	assert.False(t, ok)
}
