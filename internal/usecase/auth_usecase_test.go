package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookreview/pkg/errors"
)

type fakeProviderError struct {
	code string
}

func (e *fakeProviderError) Error() string        { return e.code }
func (e *fakeProviderError) ProviderCode() string { return e.code }

// fakeAuthClient dipakai lintas test di package ini.
type fakeAuthClient struct {
	emails      map[string]string
	signInDelay time.Duration
	signInErr   error
	createErr   error
	createdUID  string
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	if f.createdUID == "" {
		f.createdUID = "new-user-uid"
	}
	return f.createdUID, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return "user1", nil
}

func (f *fakeAuthClient) GetUserEmail(ctx context.Context, uid string) (string, error) {
	email, ok := f.emails[uid]
	if !ok {
		return "", errors.NotFound("User", nil)
	}
	return email, nil
}

func (f *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, string, error) {
	if f.signInDelay > 0 {
		time.Sleep(f.signInDelay)
	}
	if f.signInErr != nil {
		return "", "", f.signInErr
	}
	return "id-token", "refresh-token", nil
}

func (f *fakeAuthClient) RefreshIDToken(refreshToken string) (string, string, error) {
	if refreshToken != "refresh-token" {
		return "", "", &fakeProviderError{code: "INVALID_REFRESH_TOKEN"}
	}
	return "new-id-token", "new-refresh-token", nil
}

func (f *fakeAuthClient) RevokeRefreshTokens(ctx context.Context, uid string) error {
	return nil
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeProfileRepository()
	auth := &fakeAuthClient{emails: map[string]string{"user1": "user1@example.com"}}
	uc := NewAuthUseCase(repo, auth, time.Second)

	result, err := uc.Login(context.Background(), "user1@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "id-token", result.Token)
	assert.Equal(t, "refresh-token", result.RefreshToken)
	require.NotNil(t, result.Profile)
	assert.Equal(t, "user1", result.Profile.UID)
	assert.Empty(t, result.Profile.Library)
}

func TestLoginTimeout(t *testing.T) {
	repo := newFakeProfileRepository()
	auth := &fakeAuthClient{signInDelay: 200 * time.Millisecond}
	uc := NewAuthUseCase(repo, auth, 20*time.Millisecond)

	start := time.Now()
	_, err := uc.Login(context.Background(), "user1@example.com", "secret123")
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, errors.Is(err, "TIMEOUT"))
	// Deadline menang sebelum sign-in selesai
	assert.Less(t, elapsed, 150*time.Millisecond)
}

func TestLoginMapsProviderErrors(t *testing.T) {
	cases := []struct {
		providerCode string
		wantCode     string
	}{
		{"INVALID_EMAIL", "UNAUTHORIZED"},
		{"EMAIL_NOT_FOUND", "UNAUTHORIZED"},
		{"INVALID_PASSWORD", "UNAUTHORIZED"},
		{"INVALID_LOGIN_CREDENTIALS", "UNAUTHORIZED"},
		{"USER_DISABLED", "UNAUTHORIZED"},
		{"TOO_MANY_ATTEMPTS_TRY_LATER", "TOO_MANY_REQUESTS"},
		{"NETWORK_ERROR", "INTERNAL_ERROR"},
		{"SOMETHING_UNEXPECTED", "UNAUTHORIZED"},
	}

	for _, tc := range cases {
		repo := newFakeProfileRepository()
		auth := &fakeAuthClient{signInErr: &fakeProviderError{code: tc.providerCode}}
		uc := NewAuthUseCase(repo, auth, time.Second)

		_, err := uc.Login(context.Background(), "user1@example.com", "bad")
		require.Error(t, err, tc.providerCode)
		assert.True(t, errors.Is(err, tc.wantCode), "provider code %s should map to %s", tc.providerCode, tc.wantCode)
	}
}

func TestRegisterCreatesProfile(t *testing.T) {
	repo := newFakeProfileRepository()
	auth := &fakeAuthClient{}
	uc := NewAuthUseCase(repo, auth, time.Second)

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:     "new@example.com",
		Password:  "secret123",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Profile)
	assert.Equal(t, "new-user-uid", result.Profile.UID)
	assert.Equal(t, "Ada", result.Profile.FirstName)
	assert.Equal(t, "new@example.com", result.Profile.Email)
	assert.Empty(t, result.Profile.Library)

	stored, err := repo.GetByUID(context.Background(), "new-user-uid")
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", stored.LastName)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeProfileRepository()
	// Client auth membungkus kondisi email-already-exists dari admin SDK
	// ke kode EMAIL_EXISTS
	auth := &fakeAuthClient{createErr: &fakeProviderError{code: "EMAIL_EXISTS"}}
	uc := NewAuthUseCase(repo, auth, time.Second)

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:     "taken@example.com",
		Password:  "secret123",
		FirstName: "Ada",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Contains(t, err.Error(), "Email already in use.")
}

func TestRefreshToken(t *testing.T) {
	uc := NewAuthUseCase(newFakeProfileRepository(), &fakeAuthClient{}, time.Second)

	token, refreshToken, err := uc.RefreshToken(context.Background(), "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-id-token", token)
	assert.Equal(t, "new-refresh-token", refreshToken)

	_, _, err = uc.RefreshToken(context.Background(), "bogus")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}
