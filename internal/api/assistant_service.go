package api

import (
	"context"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/internal/validate"
)

// AssistantService maps the AI recommendation endpoints. The client is a
// pure pass-through: prompt in, reply out.
type AssistantService struct {
	client *Client
}

// NewAssistantService constructs the service.
func NewAssistantService(client *Client) *AssistantService {
	return &AssistantService{client: client}
}

// CorporateRecommendation asks the corporate insurance assistant.
func (s *AssistantService) CorporateRecommendation(ctx context.Context, input string) (string, error) {
	return s.recommend(ctx, "/ai/corporate-recommendation", input)
}

// AdminRecommendation asks the admin-facing assistant.
func (s *AssistantService) AdminRecommendation(ctx context.Context, input string) (string, error) {
	return s.recommend(ctx, "/ai/admin-recommendation", input)
}

// ClientRecommendation asks the client-facing assistant.
func (s *AssistantService) ClientRecommendation(ctx context.Context, input string) (string, error) {
	return s.recommend(ctx, "/ai/client-recommendation", input)
}

func (s *AssistantService) recommend(ctx context.Context, path, input string) (string, error) {
	req := dto.RecommendationRequest{Input: input}
	if err := validate.Struct(req); err != nil {
		return "", err
	}
	var res dto.RecommendationResponse
	if err := s.client.postJSON(ctx, path, nil, req, &res); err != nil {
		return "", err
	}
	return res.Response, nil
}
