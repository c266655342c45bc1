package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SohamMhatre7788/insurai/internal/api"
	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/pkg/util"
)

func TestProfileEndpointsKeyedByUserIDQueryParam(t *testing.T) {
	var (
		method string
		path   string
		userID string
	)
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		userID = r.URL.Query().Get("userId")
		json.NewEncoder(w).Encode(map[string]any{"userId": 42, "email": "priya@example.com"})
	}))
	h.login(t)

	svc := api.NewProfileService(h.client)

	profile, err := svc.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, method)
	assert.Equal(t, "/client/me", path)
	assert.Equal(t, "42", userID)
	assert.Equal(t, int64(42), profile.ID)

	_, err = svc.Update(context.Background(), 42, dto.UpdateProfileRequest{
		FirstName: "Priya",
		LastName:  "Shah",
		Email:     "priya@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/client/me", path)
	assert.Equal(t, "42", userID)

	err = svc.ChangePassword(context.Background(), 42, dto.ChangePasswordRequest{
		CurrentPassword: "old-secret",
		NewPassword:     "new-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "/client/me/password", path)
	assert.Equal(t, "42", userID)
}

func TestProfileUpdateValidatedLocally(t *testing.T) {
	requests := 0
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	h.login(t)

	svc := api.NewProfileService(h.client)

	_, err := svc.Update(context.Background(), 42, dto.UpdateProfileRequest{
		FirstName: "Priya",
		LastName:  "Shah",
		Email:     "not-an-email",
	})
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))

	err = svc.ChangePassword(context.Background(), 42, dto.ChangePasswordRequest{
		CurrentPassword: "old-secret",
		NewPassword:     "short",
	})
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))

	assert.Zero(t, requests)
}
