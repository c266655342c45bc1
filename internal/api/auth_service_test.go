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
	"github.com/SohamMhatre7788/insurai/internal/domain"
	"github.com/SohamMhatre7788/insurai/pkg/util"
)

func TestLoginExchangesCredentialsForSession(t *testing.T) {
	var body map[string]any
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(map[string]any{
			"token":     "token-xyz",
			"userId":    42,
			"firstName": "Priya",
			"lastName":  "Shah",
			"email":     "priya@example.com",
			"role":      "CLIENT",
		})
	}))

	res, err := api.NewAuthService(h.client).Login(context.Background(), dto.LoginRequest{
		Email:    "priya@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "priya@example.com", body["email"])
	assert.Equal(t, "token-xyz", res.Token)

	user := res.User()
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.Equal(t, "Priya Shah", user.FullName())
}

func TestSignupValidatedLocally(t *testing.T) {
	requests := 0
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	svc := api.NewAuthService(h.client)
	cases := map[string]dto.SignupRequest{
		"bad email":      {FirstName: "A", LastName: "B", Email: "nope", Password: "secret123"},
		"short password": {FirstName: "A", LastName: "B", Email: "a@b.com", Password: "abc"},
		"missing name":   {Email: "a@b.com", Password: "secret123"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), req)
			require.Error(t, err)
			assert.True(t, util.IsValidation(err))
		})
	}
	assert.Zero(t, requests)
}
