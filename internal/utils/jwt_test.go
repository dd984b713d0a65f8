package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "go-task-keeper"
	testSignKey = "test-sign-key"
	testUserID  = "0191c2a8-1111-7def-8000-0242ac120002"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUserID, models.PurposeAuth, time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, testUserID, token.UserID)
	assert.Equal(t, models.PurposeAuth, token.Purpose)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		purpose  string
		duration time.Duration
		signKey  string
	}{
		{"empty issuer", "", testUserID, models.PurposeAuth, time.Hour, testSignKey},
		{"empty user id", testIssuer, "", models.PurposeAuth, time.Hour, testSignKey},
		{"empty purpose", testIssuer, testUserID, "", time.Hour, testSignKey},
		{"zero duration", testIssuer, testUserID, models.PurposeAuth, 0, testSignKey},
		{"empty sign key", testIssuer, testUserID, models.PurposeAuth, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.purpose, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUserID, models.PurposeAuth, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, testUserID, parsed.UserID)
	assert.Equal(t, models.PurposeAuth, parsed.Purpose)
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUserID, models.PurposeAuth, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "other-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("other-service", testUserID, models.PurposeAuth, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUserID, models.PurposeAuth, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Tampered(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUserID, models.PurposeAuth, time.Hour, testSignKey)
	require.NoError(t, err)

	tampered := issued.SignedString[:len(issued.SignedString)-2] + "xx"
	_, err = ValidateAndParseJWTToken(tampered, testSignKey, testIssuer)
	assert.Error(t, err)
}
