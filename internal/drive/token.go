package drive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ValidateToken checks the held token with a lightweight authenticated call
// against the account-info endpoint. Any non-success status from the provider
// means the token is no longer usable and surfaces as ErrSessionExpired, so
// callers can distinguish "must re-authenticate" from a transient failure.
func (s *Service) ValidateToken(ctx context.Context) error {
	_, err := s.exec.do(ctx, http.MethodGet, s.cfg.AccountInfoURL, nil, "")
	if err == nil {
		return nil
	}

	var remoteErr *RemoteAPIError
	if errors.As(err, &remoteErr) {
		s.log.Info(ctx, "token rejected by provider", "status", remoteErr.StatusCode)
		return fmt.Errorf("%w (status %d)", ErrSessionExpired, remoteErr.StatusCode)
	}
	return err
}

// tokenResponse is the OAuth token endpoint's answer to a refresh grant.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// RefreshAccessToken exchanges a refresh token for a new access token at the
// OAuth token endpoint and stores the result in the session. The folder cache
// is kept: the identity behind the session did not change. Returns the new
// token and its lifetime in seconds.
//
// This call authenticates with client credentials rather than the bearer
// token, so it goes out directly instead of through the request executor.
func (s *Service) RefreshAccessToken(ctx context.Context, refreshToken string) (string, int, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", s.cfg.ClientID)
	form.Set("client_secret", s.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.TokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", 0, &RemoteAPIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", 0, fmt.Errorf("parse token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", 0, fmt.Errorf("token response missing access_token")
	}

	s.session.SetToken(tr.AccessToken)
	s.log.Info(ctx, "access token refreshed", "expires_in", tr.ExpiresIn)
	return tr.AccessToken, tr.ExpiresIn, nil
}
