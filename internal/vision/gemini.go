package vision

import (
	"context"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

// identifyTimeout bounds the single vision round-trip so a slow upstream
// degrades ingestion instead of hanging it.
const identifyTimeout = 30 * time.Second

const identifyPrompt = `Analyze this image and identify the LEGO set.

Please provide ONLY the LEGO set name and number if visible.
If you can identify it, respond in this format: "LEGO [Set Name] ([Set Number])"
If you cannot identify it, respond: "Unknown LEGO Set"

Examples:
- "LEGO Star Wars Millennium Falcon (75192)"
- "LEGO Creator Expert Taj Mahal (10256)"
- "LEGO City Fire Truck (60331)"
- "Unknown LEGO Set"

Keep the response concise and in English.`

// Gemini identifies LEGO sets from photos via the Gemini vision API.
// A literal "Unknown LEGO Set" answer is kept as the label; only transport
// or API failures map to nil.
type Gemini struct {
	client *genai.Client
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: client}, nil
}

func (g *Gemini) Identify(ctx context.Context, image []byte) *string {
	ctx, cancel := context.WithTimeout(ctx, identifyTimeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(identifyPrompt),
			genai.NewPartFromBytes(image, "image/jpeg"),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, nil)
	if err != nil {
		log.Printf("vision: identification failed: %v", err)
		return nil
	}

	label := strings.TrimSpace(resp.Text())
	if label == "" {
		log.Println("vision: empty response from model")
		return nil
	}

	log.Printf("vision: identified as %q", label)
	return &label
}
