package usecase

import (
	"context"
	"errors"
	"time"

	"bookreview/internal/domain/entity"
	"bookreview/internal/domain/repository"
	apperrors "bookreview/pkg/errors"
	"bookreview/pkg/logger"
)

type AuthUseCase struct {
	profileRepo  repository.ProfileRepository
	firebaseAuth FirebaseAuthClient
	loginTimeout time.Duration
}

func NewAuthUseCase(profileRepo repository.ProfileRepository, firebaseAuth FirebaseAuthClient, loginTimeout time.Duration) *AuthUseCase {
	return &AuthUseCase{
		profileRepo:  profileRepo,
		firebaseAuth: firebaseAuth,
		loginTimeout: loginTimeout,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type AuthResult struct {
	Profile      *entity.UserProfile
	Token        string
	RefreshToken string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.FirstName)
	if err != nil {
		logger.Error("Failed to create user in identity provider: %v", err)
		return nil, mapProviderError(err)
	}

	profile := &entity.UserProfile{
		UID:       uid,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Library:   []string{},
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, apperrors.Internal("Failed to create user profile", err)
	}

	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, apperrors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		Profile:      profile,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

type signInOutcome struct {
	token        string
	refreshToken string
	err          error
}

// Login membalap sign-in dengan deadline wall-clock tetap. Call yang
// sedang berjalan tidak dibatalkan saat timeout; hasil telatnya dibuang
// lewat buffered channel.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	ch := make(chan signInOutcome, 1)
	go func() {
		token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
		ch <- signInOutcome{token: token, refreshToken: refreshToken, err: err}
	}()

	var outcome signInOutcome
	select {
	case outcome = <-ch:
	case <-time.After(uc.loginTimeout):
		logger.Warn("Sign-in for %s exceeded %s deadline", email, uc.loginTimeout)
		return nil, apperrors.Timeout("The authentication server took too long to respond. Please try again.", nil)
	}

	if outcome.err != nil {
		logger.Warn("Login failed for %s: %v", email, outcome.err)
		return nil, mapProviderError(outcome.err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, outcome.token)
	if err != nil {
		return nil, apperrors.Internal("Failed to verify token", err)
	}

	profile, err := uc.getOrCreateProfile(ctx, uid, email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Profile:      profile,
		Token:        outcome.token,
		RefreshToken: outcome.refreshToken,
	}, nil
}

func (uc *AuthUseCase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	token, newRefreshToken, err := uc.firebaseAuth.RefreshIDToken(refreshToken)
	if err != nil {
		return "", "", apperrors.Unauthorized("Invalid refresh token", err)
	}

	return token, newRefreshToken, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	if err := uc.firebaseAuth.RevokeRefreshTokens(ctx, uid); err != nil {
		return apperrors.Internal("Failed to revoke session", err)
	}

	return nil
}

func (uc *AuthUseCase) getOrCreateProfile(ctx context.Context, uid, email string) (*entity.UserProfile, error) {
	profile, err := uc.profileRepo.GetByUID(ctx, uid)
	if err == nil {
		return profile, nil
	}
	if !apperrors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	profile = &entity.UserProfile{
		UID:     uid,
		Email:   email,
		Library: []string{},
	}
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// mapProviderError memetakan kode error identity provider ke set pesan
// user yang tetap.
func mapProviderError(err error) error {
	var pe interface{ ProviderCode() string }
	if !errors.As(err, &pe) {
		return apperrors.Unauthorized("An error occurred while signing in.", err)
	}

	switch pe.ProviderCode() {
	case "INVALID_EMAIL":
		return apperrors.Unauthorized("The email address is not valid.", err)
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return apperrors.Unauthorized("Incorrect credentials. Check your email and password.", err)
	case "USER_DISABLED":
		return apperrors.Unauthorized("This account has been disabled.", err)
	case "EMAIL_EXISTS":
		return apperrors.BadRequest("Email already in use.", err)
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return apperrors.TooManyRequests("Too many failed attempts. Try again later.", err)
	case "NETWORK_ERROR":
		return apperrors.Internal("Connection problem. Check your network and try again.", err)
	default:
		return apperrors.Unauthorized("An error occurred while signing in.", err)
	}
}
