package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pawhootz/storefront-backend/internal/models"
)

const assistantModel = "gemini-2.5-flash"

const (
	// The assistant never surfaces a raw error to the shopper; failures
	// come back as this in-character apology.
	assistantApology  = "Ruh-roh! Something went wrong. Please try again later."
	assistantNoAnswer = "Woof! I'm not sure how to answer that right now."
)

const assistantInstruction = `You are "Hootie", the AI Shop Assistant for PawHootz Pet Resort.
Your goal is to help customers find products from our catalog.
Be friendly, playful, and use dog-related puns occasionally.
If a user asks about a specific problem (e.g., "my dog smells"), recommend the relevant product (e.g., Calming Lavender Shampoo).
Always be polite.`

// AssistantService bridges the storefront chat widget to a hosted Gemini
// chat session seeded with the current catalog. One session lives for the
// lifetime of the service, created lazily on the first message.
type AssistantService struct {
	client *genai.Client
	logger *log.Logger

	mu      sync.Mutex
	session *genai.ChatSession
}

// NewAssistantService creates the bridge. With no API key the assistant
// runs disabled and every message gets the apology reply.
func NewAssistantService(ctx context.Context, apiKey string, logger *log.Logger) (*AssistantService, error) {
	if apiKey == "" {
		logger.Printf("GEMINI_API_KEY not set, assistant disabled")
		return &AssistantService{logger: logger}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	return &AssistantService{client: client, logger: logger}, nil
}

func (s *AssistantService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Send forwards one shopper message to the assistant and returns its
// reply. The catalog snapshot is serialized into the session context on
// first use so Hootie recommends what is actually in stock.
func (s *AssistantService) Send(ctx context.Context, message string, products []models.Product) string {
	if s.client == nil {
		return assistantApology
	}

	s.mu.Lock()
	if s.session == nil {
		model := s.client.GenerativeModel(assistantModel)
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(instructionWithCatalog(products))},
		}
		s.session = model.StartChat()
	}
	session := s.session
	s.mu.Unlock()

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		s.logger.Printf("Assistant call failed: %v", err)
		return assistantApology
	}

	reply := collectText(resp)
	if reply == "" {
		return assistantNoAnswer
	}
	return reply
}

func instructionWithCatalog(products []models.Product) string {
	if len(products) == 0 {
		return assistantInstruction
	}

	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("'%s ($%.2f) [%s] - %s'", p.Name, p.Price, p.Category, p.Description))
	}
	return assistantInstruction + "\n\nCURRENT LIVE INVENTORY:\n" + strings.Join(lines, ", ")
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
