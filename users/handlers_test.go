package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/user/inventory-go/auth"
)

type stubProfileStore struct {
	users map[int64]*auth.User
	err   error
}

func (s *stubProfileStore) GetByID(_ context.Context, id int64) (*auth.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return u, nil
}

func TestHandleGetUserProfile(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &stubProfileStore{users: map[int64]*auth.User{
		3: {ID: 3, Email: "jo@example.com", HashedPassword: "secret-hash", CreatedAt: created},
	}}
	h := NewUserHandlers(NewUserService(store, zap.NewNop()), zap.NewNop()).HandleGetUserProfile()

	tests := []struct {
		name       string
		userID     int64
		setUser    bool
		storeErr   error
		wantStatus int
	}{
		{name: "found", userID: 3, setUser: true, wantStatus: http.StatusOK},
		{name: "deleted account", userID: 99, setUser: true, wantStatus: http.StatusNotFound},
		{name: "no user in context", wantStatus: http.StatusUnauthorized},
		{name: "store failure", userID: 3, setUser: true, storeErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store.err = tt.storeErr
			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tt.setUser {
				req = req.WithContext(auth.NewContextWithUserID(req.Context(), tt.userID))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleGetUserProfileOmitsPassword(t *testing.T) {
	store := &stubProfileStore{users: map[int64]*auth.User{
		5: {ID: 5, Email: "kim@example.com", HashedPassword: "secret-hash"},
	}}
	h := NewUserHandlers(NewUserService(store, zap.NewNop()), zap.NewNop()).HandleGetUserProfile()

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req = req.WithContext(auth.NewContextWithUserID(req.Context(), 5))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	var profile UserProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, int64(5), profile.ID)
	assert.Equal(t, "kim@example.com", profile.Email)
}
