package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

type FirebaseAuthClient struct {
	client *auth.Client
	apiKey string
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
		apiKey: apiKey,
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		// Admin SDK tidak memakai kode Identity Toolkit; samakan bentuknya
		// supaya layer atas cukup satu jalur mapping
		if auth.IsEmailAlreadyExists(err) {
			return "", &ProviderError{Code: "EMAIL_EXISTS"}
		}
		return "", err
	}

	return user.UID, nil
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (f *FirebaseAuthClient) GetUserEmail(ctx context.Context, uid string) (string, error) {
	user, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return "", err
	}

	return user.Email, nil
}

// RevokeRefreshTokens dipakai saat sign-out; ID token yang sudah beredar
// tetap valid sampai expired.
func (f *FirebaseAuthClient) RevokeRefreshTokens(ctx context.Context, uid string) error {
	return f.client.RevokeRefreshTokens(ctx, uid)
}

func (f *FirebaseAuthClient) TestConnection(ctx context.Context) error {
	// Lookup user yang pasti tidak ada; user-not-found berarti service hidup
	_, err := f.client.GetUser(ctx, "connection-test-uid")
	if err != nil && auth.IsUserNotFound(err) {
		return nil
	}
	return err
}
