package firebase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookreview/pkg/logger"
)

const (
	identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"
	secureTokenURL     = "https://securetoken.googleapis.com/v1"
)

// ProviderError membawa kode error mentah dari identity provider
// (EMAIL_NOT_FOUND, INVALID_PASSWORD, dst) supaya layer di atas bisa
// memetakan ke pesan user yang tetap.
type ProviderError struct {
	Code string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider error: %s", e.Code)
}

func (e *ProviderError) ProviderCode() string {
	return e.Code
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
}

type providerErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmailPassword menukar kredensial dengan ID token lewat REST
// API Identity Toolkit; admin SDK tidak mengekspos sign-in password.
func (f *FirebaseAuthClient) SignInWithEmailPassword(email, password string) (string, string, error) {
	reqBody := signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal request: %v", err)
	}

	endpoint := fmt.Sprintf("%s/accounts:signInWithPassword?key=%s", identityToolkitURL, f.apiKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Post(endpoint, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		logger.Error("Sign-in request failed: %v", err)
		return "", "", &ProviderError{Code: "NETWORK_ERROR"}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", "", parseProviderError(body)
	}

	var signInResp signInResponse
	if err := json.Unmarshal(body, &signInResp); err != nil {
		return "", "", fmt.Errorf("failed to parse response: %v", err)
	}

	return signInResp.IDToken, signInResp.RefreshToken, nil
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
}

func (f *FirebaseAuthClient) RefreshIDToken(refreshToken string) (string, string, error) {
	endpoint := fmt.Sprintf("%s/token?key=%s", secureTokenURL, f.apiKey)

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Post(endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		logger.Error("Token refresh request failed: %v", err)
		return "", "", &ProviderError{Code: "NETWORK_ERROR"}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", "", parseProviderError(body)
	}

	var refreshResp refreshResponse
	if err := json.Unmarshal(body, &refreshResp); err != nil {
		return "", "", fmt.Errorf("failed to parse response: %v", err)
	}

	return refreshResp.IDToken, refreshResp.RefreshToken, nil
}

func parseProviderError(body []byte) error {
	var errResp providerErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
		return &ProviderError{Code: "UNKNOWN"}
	}

	// Kode kadang datang dengan detail tambahan, mis.
	// "TOO_MANY_ATTEMPTS_TRY_LATER : ..." — ambil bagian depannya saja
	code := errResp.Error.Message
	if idx := strings.Index(code, " "); idx > 0 {
		code = code[:idx]
	}

	return &ProviderError{Code: code}
}
