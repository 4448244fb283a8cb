package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/0xmhha/snipet/pkg/apierr"
	"github.com/0xmhha/snipet/pkg/logger"
	"github.com/0xmhha/snipet/pkg/session"
)

// Collection endpoints, relative to the server URL and API path.
const (
	pathRegister     = "/collections/users/records"
	pathAuthenticate = "/collections/users/auth-with-password"
	pathSnippets     = "/collections/snippets/records"
)

// Client talks to the snippet backend.
//
// It holds no session state; every call receives the server URL or the
// session it should use.
type Client struct {
	httpClient *http.Client
	apiPath    string
	logger     logger.Logger
}

// NewClient creates an API client.
func NewClient(cfg Config, log logger.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		apiPath:    strings.TrimRight(cfg.APIPath, "/"),
		logger:     log,
	}
}

// NormalizeServerURL strips trailing slashes from a server URL.
func NormalizeServerURL(serverURL string) string {
	return strings.TrimRight(strings.TrimSpace(serverURL), "/")
}

// Register creates a user account.
func (c *Client) Register(ctx context.Context, email, password, name, serverURL string) (*AccountSummary, error) {
	req := registerRequest{
		Email:           email,
		Password:        password,
		PasswordConfirm: password,
		Name:            name,
	}

	status, body, err := c.do(ctx, NormalizeServerURL(serverURL), pathRegister, "", req)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, apierr.FromResponse(status, body)
	}

	var record userRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if record.ID == "" {
		return nil, fmt.Errorf("%w: missing record id", ErrParse)
	}

	account := &AccountSummary{
		ID:    record.ID,
		Name:  record.Name,
		Email: email,
	}
	if record.Email != nil && *record.Email != "" {
		account.Email = *record.Email
	}

	c.logger.Info("account registered", "user_id", account.ID)

	return account, nil
}

// Authenticate exchanges an identity and password for a session.
//
// The session's Identity is the email the backend returns, or the given
// email when the backend hides it.
func (c *Client) Authenticate(ctx context.Context, email, password, serverURL string) (*session.Session, error) {
	server := NormalizeServerURL(serverURL)
	req := authRequest{
		Identity: email,
		Password: password,
	}

	status, body, err := c.do(ctx, server, pathAuthenticate, "", req)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, apierr.FromResponse(status, body)
	}

	var auth authResponse
	if err := json.Unmarshal(body, &auth); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if auth.Token == "" {
		return nil, fmt.Errorf("%w: missing token", ErrParse)
	}
	if auth.Record.ID == "" {
		return nil, fmt.Errorf("%w: missing record id", ErrParse)
	}

	identity := email
	if auth.Record.Email != nil && *auth.Record.Email != "" {
		identity = *auth.Record.Email
	}

	c.logger.Info("authenticated", "user_id", auth.Record.ID)

	return &session.Session{
		Identity:  identity,
		Token:     auth.Token,
		SubjectID: auth.Record.ID,
		ServerURL: server,
	}, nil
}

// CreateSnippet publishes a snippet on the session's server.
//
// The submission is validated before any request is made. AuthorID is
// taken from the session when empty.
func (c *Client) CreateSnippet(ctx context.Context, sess *session.Session, sub SnippetSubmission) (*SnippetRecord, error) {
	if !sess.Valid() {
		return nil, ErrNoToken
	}
	if sub.AuthorID == "" {
		sub.AuthorID = sess.SubjectID
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	status, body, err := c.do(ctx, sess.ServerURL, pathSnippets, sess.Token, sub)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, &SnippetError{Err: apierr.FromResponse(status, body)}
	}

	var record SnippetRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if record.ID == "" {
		return nil, fmt.Errorf("%w: missing record id", ErrParse)
	}

	c.logger.Info("snippet created", "id", record.ID, "language", sub.Language)

	return &record, nil
}

// do POSTs a JSON body and returns the status and the full response body.
//
// Transport failures, including a body that cannot be read, wrap ErrConnect.
func (c *Client) do(ctx context.Context, server, path, token string, payload interface{}) (int, []byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	url := server + c.apiPath + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}
	defer resp.Body.Close() // nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	c.logger.Debug("request completed",
		"method", http.MethodPost,
		"path", c.apiPath+path,
		"status", resp.StatusCode)

	return resp.StatusCode, body, nil
}

func success(status int) bool {
	return status >= 200 && status < 300
}
