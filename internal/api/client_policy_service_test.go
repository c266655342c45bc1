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

func TestBuyPolicySubmitsJSONAndDecodesPurchase(t *testing.T) {
	var body map[string]any
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/client-policies", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(map[string]any{
			"id":          21,
			"policyId":    3,
			"companyName": "Acme GmbH",
			"status":      "ACTIVE",
			"startDate":   "2026-09-01",
			"endDate":     "2028-09-01",
		})
	}))
	h.login(t)

	purchased, err := api.NewClientPolicyService(h.client).Buy(context.Background(), dto.BuyPolicyRequest{
		PolicyID:          3,
		CompanyName:       "Acme GmbH",
		NumberOfEmployees: 40,
		PolicyPeriodYears: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(3), body["policyId"])
	assert.Equal(t, "Acme GmbH", body["companyName"])
	assert.Equal(t, float64(40), body["numberOfEmployees"])
	assert.Equal(t, float64(2), body["policyPeriodYears"])

	assert.Equal(t, int64(21), purchased.ID)
	assert.True(t, purchased.IsActive())
	assert.Equal(t, "2026-09-01", purchased.StartDate.String())
}

func TestBuyPolicyValidatedLocally(t *testing.T) {
	requests := 0
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	h.login(t)

	_, err := api.NewClientPolicyService(h.client).Buy(context.Background(), dto.BuyPolicyRequest{
		PolicyID:    3,
		CompanyName: "Acme GmbH",
		// employee and period counts missing
	})
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))
	assert.Zero(t, requests)
}

func TestRenewPostsToRenewEndpoint(t *testing.T) {
	var method, path string
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{"id": 21, "status": "ACTIVE"})
	}))
	h.login(t)

	renewed, err := api.NewClientPolicyService(h.client).Renew(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/client-policies/21/renew", path)
	assert.Equal(t, domain.ClientPolicyStatusActive, renewed.Status)
}

func TestAssistantPassThrough(t *testing.T) {
	var path string
	var body map[string]any
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(map[string]any{"response": "consider HIGH coverage"})
	}))
	h.login(t)

	svc := api.NewAssistantService(h.client)

	reply, err := svc.CorporateRecommendation(context.Background(), "fleet of 12 trucks")
	require.NoError(t, err)
	assert.Equal(t, "/ai/corporate-recommendation", path)
	assert.Equal(t, "fleet of 12 trucks", body["input"])
	assert.Equal(t, "consider HIGH coverage", reply)

	_, err = svc.ClientRecommendation(context.Background(), "")
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))
}
