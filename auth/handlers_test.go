package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func postCredentials(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

func newTestHandler() http.Handler {
	svc := newTestService(newMemUserStore())
	return NewHandlers(svc, validator.New(), zap.NewNop()).HandleCredentials()
}

func TestHandleCredentialsValidation(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{"malformed json", `{"email":`, http.StatusBadRequest, "Invalid request body."},
		{"unknown mode", `{"email":"a@b.c","password":"pw","mode":"reset"}`, http.StatusBadRequest, "Invalid mode."},
		{"missing mode", `{"email":"a@b.c","password":"pw"}`, http.StatusBadRequest, "Invalid mode."},
		{"missing password", `{"email":"a@b.c","mode":"signup"}`, http.StatusBadRequest, "Email and password are required."},
		{"missing email", `{"password":"pw","mode":"login"}`, http.StatusBadRequest, "Email and password are required."},
		{"password over 72 bytes", `{"email":"a@b.c","password":"` + strings.Repeat("a", 73) + `","mode":"signup"}`, http.StatusBadRequest, "Password must be at most 72 bytes."},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, out := postCredentials(t, h, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, out["error"])
		})
	}
}

func TestHandleCredentialsSignupThenLogin(t *testing.T) {
	h := newTestHandler()

	rec, out := postCredentials(t, h, `{"email":"gina@example.com","password":"pw123456","mode":"signup"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "User created.", out["message"])
	assert.NotContains(t, out, "access_token")

	rec, out = postCredentials(t, h, `{"email":"gina@example.com","password":"pw123456","mode":"signup"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists.", out["error"])

	rec, out = postCredentials(t, h, `{"email":"gina@example.com","password":"pw123456","mode":"login"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged in.", out["message"])
	assert.Equal(t, "Bearer", out["token_type"])
	assert.NotEmpty(t, out["access_token"])
}

func TestHandleCredentialsLoginFailuresMatch(t *testing.T) {
	h := newTestHandler()
	postCredentials(t, h, `{"email":"hal@example.com","password":"right","mode":"signup"}`)

	recWrong, outWrong := postCredentials(t, h, `{"email":"hal@example.com","password":"wrong","mode":"login"}`)
	recMissing, outMissing := postCredentials(t, h, `{"email":"ghost@example.com","password":"right","mode":"login"}`)

	assert.Equal(t, http.StatusUnauthorized, recWrong.Code)
	assert.Equal(t, recWrong.Code, recMissing.Code)
	assert.Equal(t, outWrong, outMissing)
}

func TestHandleCredentialsDuplicateSignupIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := NewHandlers(newTestService(newMemUserStore()), validator.New(), zap.New(core)).HandleCredentials()

	postCredentials(t, h, `{"email":"ivy@example.com","password":"pw","mode":"signup"}`)
	rec, _ := postCredentials(t, h, `{"email":"ivy@example.com","password":"pw","mode":"signup"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	entries := logs.FilterMessage("Signup rejected").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "User already exists.", entries[0].ContextMap()["reason"])
}
