package api

// Services bundles one service per backend resource, all sharing the same
// configured client.
type Services struct {
	Auth           *AuthService
	Policies       *PolicyService
	ClientPolicies *ClientPolicyService
	Claims         *ClaimService
	Profile        *ProfileService
	Admin          *AdminService
	Assistant      *AssistantService
}

// NewServices wires every resource service onto the client.
func NewServices(client *Client) *Services {
	return &Services{
		Auth:           NewAuthService(client),
		Policies:       NewPolicyService(client),
		ClientPolicies: NewClientPolicyService(client),
		Claims:         NewClaimService(client),
		Profile:        NewProfileService(client),
		Admin:          NewAdminService(client),
		Assistant:      NewAssistantService(client),
	}
}
