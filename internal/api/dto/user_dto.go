package dto

// UpdateProfileRequest updates the editable profile fields.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// ChangePasswordRequest rotates the account password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// RecommendationRequest is the assistant pass-through input.
type RecommendationRequest struct {
	Input string `json:"input" validate:"required"`
}

// RecommendationResponse is the assistant pass-through reply.
type RecommendationResponse struct {
	Response string `json:"response"`
}

// ClientDashboardStats aggregates the client landing screen counters.
type ClientDashboardStats struct {
	TotalPolicies  int `json:"totalPolicies"`
	ActivePolicies int `json:"activePolicies"`
	PendingClaims  int `json:"pendingClaims"`
}

// AdminDashboardStats aggregates the admin landing screen counters.
type AdminDashboardStats struct {
	TotalPolicies int `json:"totalPolicies"`
	TotalClients  int `json:"totalClients"`
	PendingClaims int `json:"pendingClaims"`
}
