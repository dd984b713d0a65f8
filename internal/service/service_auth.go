package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// minPasswordLength is the shortest password accepted at registration.
const minPasswordLength = 6

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification and the token
// lifecycle, using bcrypt for password hashing and a per-user token list for
// revocation.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenRepository maintains the per-user list of live tokens. A signed
	// token that is no longer in the list does not authenticate.
	tokenRepository store.TokenRepository

	// uuid produces identifiers for newly registered users.
	uuid *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		uuid:            utils.NewUUIDGenerator(),
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// Register creates a new account and logs it in immediately.
//
// The email must parse as an address and the password must meet the minimum
// length; the password is stored only as a bcrypt hash. On success the fresh
// auth token is already appended to the user's token list.
//
// Returns the persisted user and token, or:
//   - [ErrInvalidEmail] / [ErrPasswordTooShort] on malformed credentials.
//   - A wrapped storage error if persistence fails (e.g. email already
//     taken — see [store.ErrEmailAlreadyTaken]).
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := validateCredentials(credentials); err != nil {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.User{}, models.Token{}, err
	}

	passwordHash, err := utils.HashPassword(credentials.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:       a.uuid.Generate(),
		Email:        credentials.Email,
		PasswordHash: passwordHash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.issueToken(ctx, registeredUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return registeredUser, token, nil
}

// Login verifies the credentials against the stored bcrypt hash and issues a
// fresh auth token.
//
// An unknown email and a wrong password are indistinguishable to the caller:
// both surface as [ErrWrongCredentials].
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.Token{}, ErrWrongCredentials
		}

		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := utils.VerifyPassword(foundUser.PasswordHash, credentials.Password); err != nil {
		log.Error().
			Str("user_id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, models.Token{}, ErrWrongCredentials
	}

	token, err := a.issueToken(ctx, foundUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

// Authenticate resolves a raw token string to its owning user.
//
// A token authenticates only when all three hold: the signature and standard
// claims verify, the purpose claim is "auth", and the exact string is still
// present in the owner's token list. Every failure mode collapses into
// [ErrTokenIsExpiredOrInvalid] so that callers cannot distinguish a revoked
// token from a forged one.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	if token.Purpose != models.PurposeAuth {
		log.Error().Str("purpose", token.Purpose).Msg("token carries wrong purpose")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	live, err := a.tokenRepository.HasToken(ctx, token.UserID, token.Purpose, tokenString)
	if err != nil {
		log.Err(err).Str("user_id", token.UserID).Msg("token lookup failed")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if !live {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		log.Err(err).Str("user_id", token.UserID).Msg("token owner lookup failed")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return user, nil
}

// Logout removes the exact token string from the user's token list. The
// operation is idempotent: revoking an already-absent token succeeds.
func (a *authService) Logout(ctx context.Context, userID, tokenString string) error {
	log := logger.FromContext(ctx)

	if err := a.tokenRepository.DeleteToken(ctx, userID, tokenString); err != nil {
		log.Err(err).Str("user_id", userID).Msg("token revocation failed")
		return fmt.Errorf("token revocation failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the auth purpose, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, models.PurposeAuth, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to [ErrTokenIsExpiredOrInvalid] so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// issueToken signs a fresh token and appends it to the user's token list.
func (a *authService) issueToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("token creation failed")
		return models.Token{}, err
	}

	if err := a.tokenRepository.AddToken(ctx, user.UserID, token.Purpose, token.SignedString); err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("saving token to token list failed")
		return models.Token{}, fmt.Errorf("saving token failed: %w", err)
	}

	return token, nil
}

// validateCredentials applies the registration rules: an email-shaped login
// key and a password of at least minPasswordLength characters.
func validateCredentials(credentials models.Credentials) error {
	if credentials.Email == "" || credentials.Password == "" {
		return ErrInvalidDataProvided
	}

	if _, err := mail.ParseAddress(credentials.Email); err != nil {
		return ErrInvalidEmail
	}

	if len(credentials.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}
