package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/wecareapp/driveclient/internal/logging"
)

// executor wraps outbound calls to the provider's API: it attaches the bearer
// token from the session, translates non-success statuses into RemoteAPIError,
// and applies method-aware response parsing. The provider is inconsistent
// about response bodies across verbs, so parsing is deliberately tolerant.
type executor struct {
	httpClient *http.Client
	session    *Session
	log        logging.Logger
}

func newExecutor(httpClient *http.Client, session *Session, log logging.Logger) *executor {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &executor{
		httpClient: httpClient,
		session:    session,
		log:        log.With("component", "executor"),
	}
}

// send performs an authenticated request and returns the raw response body
// together with the response content type. Fails with ErrUnauthenticated when
// no token is held, and with RemoteAPIError on a non-success status.
func (e *executor) send(ctx context.Context, method, rawURL string, body io.Reader, contentType string) ([]byte, string, error) {
	token := e.session.Token()
	if token == "" {
		return nil, "", ErrUnauthenticated
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	reqID := uuid.NewString()
	e.log.Debug(ctx, "provider request", "request_id", reqID, "method", method, "url", rawURL)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e.log.Warn(ctx, "provider request failed",
			"request_id", reqID, "method", method, "status", resp.StatusCode)
		return nil, "", &RemoteAPIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	e.log.Debug(ctx, "provider response",
		"request_id", reqID, "status", resp.StatusCode, "bytes", len(respBody))
	return respBody, resp.Header.Get("Content-Type"), nil
}

// doRaw is send without response parsing, for endpoints that return file
// content rather than JSON (alt=media).
func (e *executor) doRaw(ctx context.Context, method, rawURL string, body io.Reader, contentType string) ([]byte, error) {
	respBody, _, err := e.send(ctx, method, rawURL, body, contentType)
	return respBody, err
}

// do performs an authenticated request and parses the response body by
// method. A nil json.RawMessage is the synthetic success marker.
//
//   - DELETE: no body expected, always the marker.
//   - PATCH: parsed JSON only when the response declares a JSON content type.
//   - everything else: parsed JSON when the body is non-empty valid JSON,
//     the marker otherwise.
func (e *executor) do(ctx context.Context, method, rawURL string, body io.Reader, contentType string) (json.RawMessage, error) {
	respBody, respCT, err := e.send(ctx, method, rawURL, body, contentType)
	if err != nil {
		return nil, err
	}

	switch method {
	case http.MethodDelete:
		return nil, nil
	case http.MethodPatch:
		if strings.Contains(respCT, "application/json") && len(respBody) > 0 {
			return json.RawMessage(respBody), nil
		}
		return nil, nil
	default:
		if len(respBody) == 0 || !json.Valid(respBody) {
			return nil, nil
		}
		return json.RawMessage(respBody), nil
	}
}
