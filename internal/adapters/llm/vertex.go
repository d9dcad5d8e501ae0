package llm

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/korahq/kora-agent/internal/domain"
)

type VertexClient struct {
	client    *genai.Client
	modelName string
}

// NewVertexClient creates a ReplyClient based on Vertex AI (Gemini).
// Uses environment variables for project and region to simplify.
func NewVertexClient(ctx context.Context) (*VertexClient, error) {
	projectID := os.Getenv("KORA_GCP_PROJECT")
	location := os.Getenv("KORA_GCP_LOCATION")
	if projectID == "" || location == "" {
		return nil, fmt.Errorf("KORA_GCP_PROJECT and KORA_GCP_LOCATION must be set")
	}

	modelName := os.Getenv("KORA_MODEL_NAME")
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &VertexClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateReply implements the plain generation path.
func (v *VertexClient) GenerateReply(ctx context.Context, history []domain.ContextMessage) (string, error) {
	return v.generate(ctx, history, systemPrompt(history), "")
}

// GenerateCoachReply implements the enriched, plan-aware path.
func (v *VertexClient) GenerateCoachReply(ctx context.Context, history []domain.ContextMessage, planSummary string) (string, error) {
	system := systemPrompt(history) + "\n" + buildCoachPrompt(planSummary)
	return v.generate(ctx, history, system, "")
}

// GenerateAction asks the model whether the utterance is a tool request
// and maps the JSON answer to a tagged result.
func (v *VertexClient) GenerateAction(ctx context.Context, history []domain.ContextMessage, utterance string) (*domain.ReplyResult, error) {
	raw, err := v.generate(ctx, history, systemPrompt(history), buildActionPrompt(history, utterance))
	if err != nil {
		return nil, err
	}
	return parseAction(raw)
}

// generate runs one model call. When extraTurn is non-empty it is
// appended as a final user turn after the history.
func (v *VertexClient) generate(ctx context.Context, history []domain.ContextMessage, system, extraTurn string) (string, error) {
	var contents []*genai.Content
	for _, m := range history {
		var role genai.Role
		switch m.Role {
		case domain.RoleUser:
			role = genai.RoleUser
		case domain.RoleAssistant:
			role = genai.RoleModel
		default:
			// The system entry travels via SystemInstruction.
			continue
		}

		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	if extraTurn != "" {
		contents = append(contents, genai.NewContentFromText(extraTurn, genai.RoleUser))
	}

	temp := float32(0.7)
	topP := float32(0.9)
	outputTokens := int32(1024)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       &temp,
		TopP:              &topP,
		MaxOutputTokens:   outputTokens,
	}

	res, err := v.client.Models.GenerateContent(ctx, v.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("vertex generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("vertex returned empty text")
	}

	return text, nil
}
