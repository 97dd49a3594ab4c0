package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/socialpulse/socialpulse/internal/config"
	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/internal/store"
	"github.com/socialpulse/socialpulse/internal/utils"
	"github.com/socialpulse/socialpulse/internal/validators"
	"github.com/socialpulse/socialpulse/models"
)

// bcryptCost is the work factor applied when hashing passwords at
// registration time.
const bcryptCost = 12

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

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

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates the username, email, and password, hashes the password with
// bcrypt, and delegates persistence to the UserRepository. The plaintext
// password is never stored or logged.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - A validators sentinel if any field fails validation.
//   - store.ErrUsernameAlreadyExists / store.ErrEmailAlreadyExists if the
//     handle or address is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateUsername(req.Username); err != nil {
		log.Error().Str("username", req.Username).Msg("invalid username provided")
		return models.User{}, err
	}
	if err := validators.ValidateEmail(req.Email); err != nil {
		log.Error().Str("email", req.Email).Msg("invalid email provided")
		return models.User{}, err
	}
	if err := validators.ValidatePassword(req.Password); err != nil {
		log.Error().Msg("invalid password provided")
		return models.User{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		return models.User{}, fmt.Errorf("password hashing ended with error: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a session token.
//
// It looks the account up by exact email match and compares the supplied
// password against the stored bcrypt hash. An unknown email and a wrong
// password both surface as ErrInvalidCredentials so callers cannot probe
// which addresses are registered.
//
// Returns the signed token and the authenticated user record, or:
//   - ErrInvalidCredentials on unknown email or password mismatch.
//   - A wrapped error if token signing fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Str("email", req.Email).Msg("login attempt for unknown email")
			return models.Token{}, models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.Token{}, models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Error().
			Int64("id", foundUser.ID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.Token{}, models.User{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("token generation ended with error")
		return models.Token{}, models.User{}, fmt.Errorf("token generation ended with error: %w", err)
	}

	return token, foundUser, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and expiry, and normalises low-level JWT errors into the
// service sentinels:
//   - ErrTokenExpired when the expiry claim has passed.
//   - ErrTokenMissingSubject when no subject claim identifies the user.
//   - ErrTokenInvalid for every other validation failure (bad signature,
//     malformed string, wrong issuer).
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, ErrTokenExpired
		case errors.Is(err, utils.ErrEmptySubject):
			return models.Token{}, ErrTokenMissingSubject
		default:
			return models.Token{}, ErrTokenInvalid
		}
	}

	return token, nil
}
