package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/client"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/config"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/tokenstore"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/logging"
)

const apiPrefix = "/api/v1"

type harness struct {
	app    *App
	out    *bytes.Buffer
	tokens *tokenstore.MemoryStore
}

// newHarness wires an App to a test API server and feeds it the given
// REPL input, one command or answer per line.
func newHarness(t *testing.T, mux *http.ServeMux, input ...string) *harness {
	t.Helper()
	withTerminal(t, false)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := &config.Config{AppURL: "https://app.example"}
	tokens := tokenstore.NewMemoryStore()
	api := client.NewHTTPClient(srv.URL+apiPrefix, tokens, client.WithTimeout(5*time.Second))
	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(input, "\n") + "\n")

	return &harness{
		app:    newApp(cfg, logging.Discard(), api, tokens, in, out),
		out:    out,
		tokens: tokens,
	}
}

func (h *harness) run(t *testing.T) string {
	t.Helper()
	require.NoError(t, h.app.Run(context.Background()))
	return h.out.String()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func authBody(token string, requires2FA bool) map[string]any {
	return map[string]any{
		"user_id":           "u-1",
		"email":             "ada@example.com",
		"full_name":         "Ada Lovelace",
		"plan":              "free",
		"credits_remaining": 5,
		"access_token":      token,
		"refresh_token":     "r-" + token,
		"token_type":        "bearer",
		"requires_2fa":      requires2FA,
	}
}

func handleLogin(t *testing.T, mux *http.ServeMux, requires2FA bool) {
	mux.HandleFunc("POST "+apiPrefix+"/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var p models.LoginPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		if p.Password != "Passw0rd!" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized", "message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, authBody("tok-login", requires2FA))
	})
}

func TestRun_LoginWithTwoFA(t *testing.T) {
	mux := http.NewServeMux()
	handleLogin(t, mux, true)
	mux.HandleFunc("POST "+apiPrefix+"/auth/2fa/verify-login", func(w http.ResponseWriter, r *http.Request) {
		var p models.TwoFALoginPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "u-1", p.UserID)
		if p.Code != "123456" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_request", "message": "Invalid code"})
			return
		}
		writeJSON(w, http.StatusOK, authBody("tok-full", false))
	})
	mux.HandleFunc("GET "+apiPrefix+"/auth/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-full", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, authBody("", false))
	})

	h := newHarness(t, mux,
		"login", "ada@example.com", "Passw0rd!", "000000",
		"2fa 123456",
		"whoami",
		"exit",
	)
	out := h.run(t)

	assert.Contains(t, out, "Invalid code")
	assert.Contains(t, out, "2fa <code>")
	assert.Contains(t, out, "Logged in as Ada Lovelace (free plan, 5 credits)")
	assert.Contains(t, out, "credits: 5")
	assert.Contains(t, out, "Bye!")
	assert.True(t, h.app.auth.IsAuthenticated())

	tok, _ := h.tokens.Get(context.Background())
	assert.Equal(t, "tok-full", tok)
}

func TestRun_LoginFailure(t *testing.T) {
	mux := http.NewServeMux()
	handleLogin(t, mux, false)

	h := newHarness(t, mux, "login", "ada@example.com", "wrong", "exit")
	out := h.run(t)

	assert.Contains(t, out, "Error: Invalid credentials")
	assert.False(t, h.app.auth.IsAuthenticated())
}

func TestRun_RestoresStoredSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+apiPrefix+"/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-old", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, authBody("tok-new", false))
	})

	h := newHarness(t, mux, "exit")
	require.NoError(t, h.tokens.Set(context.Background(), "tok-old"))
	out := h.run(t)

	assert.Contains(t, out, "Welcome back, Ada Lovelace!")
	tok, _ := h.tokens.Get(context.Background())
	assert.Equal(t, "tok-new", tok)
}

func TestRun_AuthCommandsNeedSession(t *testing.T) {
	h := newHarness(t, http.NewServeMux(), "resumes", "help", "exit")
	out := h.run(t)

	assert.Contains(t, out, "Please log in first.")
	assert.Contains(t, out, "login")
	assert.NotContains(t, out, "resume-add")
}

func TestRun_LogoutClearsContainers(t *testing.T) {
	mux := http.NewServeMux()
	handleLogin(t, mux, false)
	mux.HandleFunc("GET "+apiPrefix+"/resumes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"resumes": []map[string]any{
			{"id": "r1", "title": "Backend", "file_name": "Backend.txt", "version": 1, "status": "active", "is_default": true},
		}})
	})
	mux.HandleFunc("POST "+apiPrefix+"/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	h := newHarness(t, mux,
		"login", "ada@example.com", "Passw0rd!",
		"resumes",
		"logout",
		"exit",
	)
	out := h.run(t)

	assert.Contains(t, out, "Backend *")
	assert.Contains(t, out, "Logged out.")
	assert.Empty(t, h.app.resumes.Resumes())
	assert.False(t, h.app.auth.IsAuthenticated())
	tok, _ := h.tokens.Get(context.Background())
	assert.Empty(t, tok)
}

func TestRun_RegisterPasswordMismatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+apiPrefix+"/auth/register", func(w http.ResponseWriter, r *http.Request) {
		t.Error("register must not be called")
	})

	h := newHarness(t, mux, "register", "ada@example.com", "Ada", "Passw0rd!", "Passw0rd?", "exit")
	out := h.run(t)

	assert.Contains(t, out, "passwords do not match")
}

func TestRun_CheckoutUsesAppURL(t *testing.T) {
	mux := http.NewServeMux()
	handleLogin(t, mux, false)
	mux.HandleFunc("GET "+apiPrefix+"/stripe/plans", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"plans": []map[string]any{
			{"id": "p1", "name": "pro", "price_monthly": 1999, "price_yearly": 19900,
				"stripe_price_id_monthly": "price_pro_m", "stripe_price_id_yearly": "price_pro_y"},
		}})
	})
	mux.HandleFunc("POST "+apiPrefix+"/stripe/checkout-session", func(w http.ResponseWriter, r *http.Request) {
		var p models.CreateCheckoutSessionPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "price_pro_y", p.PriceID)
		assert.Equal(t, "https://app.example/billing?success=true", p.SuccessURL)
		assert.Equal(t, "https://app.example/subscribe", p.CancelURL)
		writeJSON(w, http.StatusOK, map[string]string{"session_id": "cs_1", "url": "https://checkout.example/cs_1"})
	})

	h := newHarness(t, mux,
		"login", "ada@example.com", "Passw0rd!",
		"checkout pro yearly",
		"checkout gold",
		"exit",
	)
	out := h.run(t)

	assert.Contains(t, out, "https://checkout.example/cs_1")
	assert.Contains(t, out, "unknown plan")
}

func TestRun_UsageLineAndDeclinedConfirm(t *testing.T) {
	mux := http.NewServeMux()
	handleLogin(t, mux, false)
	mux.HandleFunc("DELETE "+apiPrefix+"/resumes/{id}", func(w http.ResponseWriter, r *http.Request) {
		t.Error("declined delete must not reach the server")
	})

	h := newHarness(t, mux,
		"login", "ada@example.com", "Passw0rd!",
		"resume-default",
		"resume-delete r1", "n",
		"exit",
	)
	out := h.run(t)

	assert.Contains(t, out, "Usage: resume-default <id>")
	assert.Contains(t, out, "Cancelled.")
}

func TestOpenTokenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, closeFn, err := openTokenStore(ctx, &config.Config{TokenBackend: config.BackendMemory})
		require.NoError(t, err)
		assert.IsType(t, &tokenstore.MemoryStore{}, store)
		assert.NoError(t, closeFn())
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := &config.Config{
			TokenBackend:    config.BackendSQLite,
			DatabasePath:    filepath.Join(t.TempDir(), "nested", "client.db"),
			TokenStorageKey: tokenstore.DefaultKey,
		}
		store, closeFn, err := openTokenStore(ctx, cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = closeFn() })

		require.NoError(t, store.Set(ctx, "tok"))
		tok, err := store.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok", tok)
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := openTokenStore(ctx, &config.Config{TokenBackend: "etcd"})
		assert.ErrorIs(t, err, ErrUnknownBackend)
	})
}

func TestPrompt(t *testing.T) {
	mux := http.NewServeMux()
	handleLogin(t, mux, false)
	h := newHarness(t, mux, "ada@example.com", "wrong", "ada@example.com", "Passw0rd!")
	ctx := context.Background()

	assert.Equal(t, "careerpilot> ", h.app.prompt())

	require.Error(t, h.app.login(ctx, nil))
	assert.Contains(t, h.app.prompt(), "!")

	require.NoError(t, h.app.login(ctx, nil))
	p := h.app.prompt()
	assert.Contains(t, p, "ada@example.com")
	assert.NotContains(t, p, "!")
}

func TestTokenExpiry(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		TokenBackend:    config.BackendSQLite,
		DatabasePath:    filepath.Join(t.TempDir(), "client.db"),
		TokenStorageKey: tokenstore.DefaultKey,
	}
	store, closeFn, err := openTokenStore(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })

	a := newApp(cfg, logging.Discard(), client.NewHTTPClient("http://127.0.0.1:1", store), store, strings.NewReader(""), &bytes.Buffer{})

	_, ok := a.tokenExpiry(ctx)
	assert.False(t, ok)

	exp := time.Now().Add(time.Hour).Truncate(time.Second).UTC()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, tok))

	got, ok := a.tokenExpiry(ctx)
	require.True(t, ok)
	assert.True(t, exp.Equal(got))
}
