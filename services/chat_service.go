package services

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const chatSystemInstruction = "You are a helpful assistant and an expert on Ayurveda. " +
	"Provide answers to user questions, always staying within the context of Ayurvedic " +
	"principles and knowledge. Use clear, simple language to explain concepts."

// Replier answers a single chat message. The Gemini implementation is
// swapped for a stub in tests.
type Replier interface {
	Reply(ctx context.Context, message string) (string, error)
}

// GeminiService proxies chat messages to gemini-1.5-flash with the
// Ayurveda system prompt. The client is built lazily so the service can
// be constructed without an API key at startup.
type GeminiService struct {
	mu     sync.Mutex
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService() *GeminiService {
	return &GeminiService{}
}

func (g *GeminiService) init(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.model != nil {
		return nil
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return errors.New("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return err
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetTemperature(0.9)
	model.SetTopK(1)
	model.SetTopP(1)

	g.client = client
	g.model = model
	return nil
}

func (g *GeminiService) Reply(ctx context.Context, message string) (string, error) {
	if err := g.init(ctx); err != nil {
		return "", err
	}

	// The system prompt goes in as the opening turn of the conversation.
	cs := g.model.StartChat()
	cs.History = []*genai.Content{
		{
			Role:  "user",
			Parts: []genai.Part{genai.Text(chatSystemInstruction)},
		},
	}

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}
