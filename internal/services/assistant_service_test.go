package services

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhootz/storefront-backend/internal/models"
)

func TestAssistantDisabledWithoutKey(t *testing.T) {
	svc, err := NewAssistantService(context.Background(), "", testLogger())
	require.NoError(t, err)

	reply := svc.Send(context.Background(), "my dog smells", nil)
	assert.Equal(t, assistantApology, reply)
}

func TestInstructionWithCatalog(t *testing.T) {
	t.Run("no products keeps base instruction", func(t *testing.T) {
		assert.Equal(t, assistantInstruction, instructionWithCatalog(nil))
	})

	t.Run("products are serialized into context", func(t *testing.T) {
		got := instructionWithCatalog([]models.Product{
			{Name: "Tough Tug Rope", Price: 15.50, Category: models.CategoryToys, Description: "durable rope"},
		})
		assert.Contains(t, got, "CURRENT LIVE INVENTORY:")
		assert.Contains(t, got, "'Tough Tug Rope ($15.50) [toys] - durable rope'")
	})
}

func TestCollectText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Woof! "), genai.Text("Try the rope.")}}},
			{Content: nil},
		},
	}

	assert.Equal(t, "Woof! Try the rope.", collectText(resp))
}
