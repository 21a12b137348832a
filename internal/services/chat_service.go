// internal/services/chat_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/equipscout/equipscout-backend/internal/models"
)

const chatSystemInstruction = "You are a helpful assistant specializing in commercial kitchen and laundry equipment. Use the search tool to answer user questions about products, prices, and suppliers. Keep your answers concise and helpful."

// ChatService fronts the conversational side of the provider. Provider
// failures never surface as errors; the user gets an explanatory message
// and the UI stays usable.
type ChatService struct {
	client *ProviderClient
}

func NewChatService(client *ProviderClient) *ChatService {
	return &ChatService{client: client}
}

// Converse answers a free-form user question.
func (s *ChatService) Converse(ctx context.Context, message string, history []models.ChatMessage) string {
	prompt := chatSystemInstruction + "\n\n"
	for _, entry := range history {
		prompt += fmt.Sprintf("%s: %s\n", entry.Role, entry.Text)
	}
	prompt += "user: " + message

	text, _, err := s.client.Generate(ctx, prompt, true)
	if err != nil {
		logrus.WithError(err).Warn("Chat provider call failed")
		return "Sorry, I encountered an error. Please try again."
	}
	return text
}

// SummarizeDifferences produces a comparison summary for the compare list.
func (s *ChatService) SummarizeDifferences(ctx context.Context, products []models.Product) string {
	encoded, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return "Could not generate comparison summary."
	}

	prompt := fmt.Sprintf(`You are a helpful product comparison assistant.
Analyze the following commercial equipment products and provide a concise summary of their key differences.
Focus on specifications, price, and primary use case. Use bullet points for clarity.

Products:
%s
`, encoded)

	text, _, err := s.client.Generate(ctx, prompt, false)
	if err != nil {
		logrus.WithError(err).Warn("Comparison summary call failed")
		return "Could not generate comparison summary."
	}
	return text
}
