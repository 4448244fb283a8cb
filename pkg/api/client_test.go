package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/0xmhha/snipet/pkg/apierr"
	"github.com/0xmhha/snipet/pkg/logger"
	"github.com/0xmhha/snipet/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend starts a server that serves a single endpoint.
func backend(t *testing.T, path string, handler func(w http.ResponseWriter, r *http.Request, body map[string]interface{})) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			t.Errorf("unexpected path: %s, want %s", r.URL.Path, path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		handler(w, r, body)
	}))
	t.Cleanup(server.Close)

	return server
}

func reply(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func newTestClient() *Client {
	return NewClient(Config{APIPath: "/api"}, logger.Noop())
}

func TestAuthenticate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := backend(t, "/api/collections/users/auth-with-password", func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
			assert.Equal(t, "a@b.com", body["identity"])
			assert.Equal(t, "secret", body["password"])
			assert.Empty(t, r.Header.Get("Authorization"))
			reply(w, http.StatusOK, `{"token":"abc","record":{"id":"u1","email":"a@b.com","name":"A"}}`)
		})

		sess, err := newTestClient().Authenticate(context.Background(), "a@b.com", "secret", server.URL)
		require.NoError(t, err)

		assert.Equal(t, session.Session{
			Identity:  "a@b.com",
			Token:     "abc",
			SubjectID: "u1",
			ServerURL: server.URL,
		}, *sess)
	})

	t.Run("email hidden by backend", func(t *testing.T) {
		server := backend(t, "/api/collections/users/auth-with-password", func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
			reply(w, http.StatusOK, `{"token":"abc","record":{"id":"u1","name":"A"}}`)
		})

		sess, err := newTestClient().Authenticate(context.Background(), "typed@b.com", "secret", server.URL)
		require.NoError(t, err)
		assert.Equal(t, "typed@b.com", sess.Identity)
	})

	t.Run("trailing slash is stripped", func(t *testing.T) {
		server := backend(t, "/api/collections/users/auth-with-password", func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
			reply(w, http.StatusOK, `{"token":"abc","record":{"id":"u1","name":"A"}}`)
		})

		sess, err := newTestClient().Authenticate(context.Background(), "a@b.com", "secret", server.URL+"/")
		require.NoError(t, err)
		assert.Equal(t, server.URL, sess.ServerURL)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		server := backend(t, "/api/collections/users/auth-with-password", func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
			reply(w, http.StatusBadRequest, `{"message":"Invalid credentials"}`)
		})

		sess, err := newTestClient().Authenticate(context.Background(), "a@b.com", "wrong", server.URL)
		require.Error(t, err)
		assert.Nil(t, sess)
		assert.Equal(t, "Invalid credentials", err.Error())

		var apiErr *apierr.Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	})

	t.Run("error body is not json", func(t *testing.T) {
		server := backend(t, "/api/collections/users/auth-with-password", func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
			reply(w, http.StatusBadGateway, `<html>bad gateway</html>`)
		})

		_, err := newTestClient().Authenticate(context.Background(), "a@b.com", "secret", server.URL)
		require.Error(t, err)
		assert.Equal(t, "Unknown error", err.Error())
	})

	t.Run("success body is not json", func(t *testing.T) {
		server := backend(t, "/api/collections/users/auth-with-password", func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
			reply(w, http.StatusOK, `not json`)
		})

		_, err := newTestClient().Authenticate(context.Background(), "a@b.com", "secret", server.URL)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrParse), "error = %v, want ErrParse", err)
	})

	t.Run("success body without token", func(t *testing.T) {
		server := backend(t, "/api/collections/users/auth-with-password", func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
			reply(w, http.StatusOK, `{"record":{"id":"u1"}}`)
		})

		_, err := newTestClient().Authenticate(context.Background(), "a@b.com", "secret", server.URL)
		assert.True(t, errors.Is(err, ErrParse), "error = %v, want ErrParse", err)
	})
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := backend(t, "/api/collections/users/records", func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
			assert.Equal(t, "a@b.com", body["email"])
			assert.Equal(t, "longpassword", body["password"])
			assert.Equal(t, "longpassword", body["passwordConfirm"])
			assert.Equal(t, "Alice", body["name"])
			reply(w, http.StatusOK, `{"id":"u1","name":"Alice","email":"a@b.com"}`)
		})

		account, err := newTestClient().Register(context.Background(), "a@b.com", "longpassword", "Alice", server.URL)
		require.NoError(t, err)
		assert.Equal(t, AccountSummary{ID: "u1", Name: "Alice", Email: "a@b.com"}, *account)
	})

	t.Run("validation failure with field details", func(t *testing.T) {
		server := backend(t, "/api/collections/users/records", func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
			reply(w, http.StatusBadRequest, `{
				"code": 400,
				"message": "Failed to create record.",
				"data": {
					"email": {"code": "validation_not_unique", "message": "Value must be unique."},
					"password": {"code": "validation_length_out_of_range", "message": "Must be at least 8 characters."}
				}
			}`)
		})

		_, err := newTestClient().Register(context.Background(), "a@b.com", "short", "Alice", server.URL)
		require.Error(t, err)
		assert.Equal(t,
			"Failed to create record. (email: Value must be unique., password: Must be at least 8 characters.)",
			err.Error())
	})

	t.Run("empty error body", func(t *testing.T) {
		server := backend(t, "/api/collections/users/records", func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := newTestClient().Register(context.Background(), "a@b.com", "longpassword", "Alice", server.URL)
		require.Error(t, err)
		assert.Equal(t, "Unknown error", err.Error())
	})
}

func TestCreateSnippet(t *testing.T) {
	submission := SnippetSubmission{
		Title:       "Hello",
		Code:        "print('hi')",
		Language:    "python",
		Description: "greeting",
		Visibility:  VisibilityPrivate,
	}

	t.Run("success", func(t *testing.T) {
		server := backend(t, "/api/collections/snippets/records", func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
			assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
			assert.Equal(t, map[string]interface{}{
				"title":       "Hello",
				"code":        "print('hi')",
				"language":    "python",
				"description": "greeting",
				"visibility":  "private",
				"author":      "u1",
			}, body)
			reply(w, http.StatusOK, `{"id":"s1","title":"Hello","collectionName":"snippets"}`)
		})

		sess := &session.Session{Identity: "a@b.com", Token: "abc", SubjectID: "u1", ServerURL: server.URL}
		record, err := newTestClient().CreateSnippet(context.Background(), sess, submission)
		require.NoError(t, err)
		assert.Equal(t, SnippetRecord{ID: "s1", Title: "Hello"}, *record)
	})

	t.Run("rejected is prefixed with status", func(t *testing.T) {
		server := backend(t, "/api/collections/snippets/records", func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
			reply(w, http.StatusBadRequest, `{"message":"Failed to create record.","data":{"title":{"message":"Cannot be blank."}}}`)
		})

		sess := &session.Session{Token: "abc", SubjectID: "u1", ServerURL: server.URL}
		_, err := newTestClient().CreateSnippet(context.Background(), sess, submission)
		require.Error(t, err)
		assert.Equal(t, "Failed to create snippet (400 Bad Request): Failed to create record. (title: Cannot be blank.)", err.Error())

		var snippetErr *SnippetError
		require.True(t, errors.As(err, &snippetErr))
		var apiErr *apierr.Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	})

	t.Run("unauthorized without envelope", func(t *testing.T) {
		server := backend(t, "/api/collections/snippets/records", func(w http.ResponseWriter, r *http.Request, body map[string]interface{}) {
			w.WriteHeader(http.StatusForbidden)
		})

		sess := &session.Session{Token: "stale", SubjectID: "u1", ServerURL: server.URL}
		_, err := newTestClient().CreateSnippet(context.Background(), sess, submission)
		require.Error(t, err)
		assert.Equal(t, "Failed to create snippet (403 Forbidden): Unknown error", err.Error())
	})
}

// failingServer fails the test if any request reaches it.
func failingServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusTeapot)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestCreateSnippetValidatesBeforeRequest(t *testing.T) {
	server := failingServer(t)
	sess := &session.Session{Token: "abc", SubjectID: "u1", ServerURL: server.URL}

	valid := SnippetSubmission{Title: "T", Code: "x", Language: "go", Visibility: VisibilityPublic}

	tests := []struct {
		name    string
		mutate  func(s *SnippetSubmission)
		sess    *session.Session
		wantErr error
	}{
		{
			name:    "hidden visibility",
			mutate:  func(s *SnippetSubmission) { s.Visibility = "hidden" },
			wantErr: ErrInvalidVisibility,
		},
		{
			name:    "empty visibility",
			mutate:  func(s *SnippetSubmission) { s.Visibility = "" },
			wantErr: ErrInvalidVisibility,
		},
		{
			name:    "uppercase visibility",
			mutate:  func(s *SnippetSubmission) { s.Visibility = "PUBLIC" },
			wantErr: ErrInvalidVisibility,
		},
		{
			name:    "empty title",
			mutate:  func(s *SnippetSubmission) { s.Title = "" },
			wantErr: ErrTitleRequired,
		},
		{
			name:    "whitespace code",
			mutate:  func(s *SnippetSubmission) { s.Code = " \n\t " },
			wantErr: ErrEmptyCode,
		},
		{
			name:    "session without token",
			mutate:  func(s *SnippetSubmission) {},
			sess:    &session.Session{SubjectID: "u1", ServerURL: server.URL},
			wantErr: ErrNoToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := valid
			tt.mutate(&sub)

			s := sess
			if tt.sess != nil {
				s = tt.sess
			}

			_, err := newTestClient().CreateSnippet(context.Background(), s, sub)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := newTestClient()
	ctx := context.Background()

	_, err := client.Authenticate(ctx, "a@b.com", "secret", url)
	assert.ErrorIs(t, err, ErrConnect)

	_, err = client.Register(ctx, "a@b.com", "secret", "A", url)
	assert.ErrorIs(t, err, ErrConnect)

	sess := &session.Session{Token: "abc", SubjectID: "u1", ServerURL: url}
	_, err = client.CreateSnippet(ctx, sess, SnippetSubmission{Title: "T", Code: "x", Visibility: VisibilityPublic})
	assert.ErrorIs(t, err, ErrConnect)
}

func TestParseVisibility(t *testing.T) {
	for _, s := range []string{"public", "private"} {
		v, err := ParseVisibility(s)
		require.NoError(t, err)
		assert.Equal(t, Visibility(s), v)
	}

	_, err := ParseVisibility("hidden")
	assert.ErrorIs(t, err, ErrInvalidVisibility)
}

func TestNormalizeServerURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:8090", NormalizeServerURL("http://127.0.0.1:8090/"))
	assert.Equal(t, "http://127.0.0.1:8090", NormalizeServerURL(" http://127.0.0.1:8090// "))
	assert.Equal(t, "https://x.example.com/pb", NormalizeServerURL("https://x.example.com/pb"))
}
