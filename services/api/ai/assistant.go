// Package ai wraps the hosted model gateway used for image-based crop
// health assessment and the conversational assistant. Both are opaque
// upstream calls; the engine never depends on this package.
package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const maxImageBytes = 5 * 1024 * 1024

// Boundary validation failures. Each constraint carries a fixed message so
// callers can surface it verbatim.
var (
	ErrImageNotBase64  = errors.New("image must be valid base64")
	ErrImageTooLarge   = errors.New("image exceeds the 5MB limit")
	ErrImageBadType    = errors.New("image type must be jpeg, png, webp or gif")
	ErrTooManyMessages = errors.New("chat history exceeds the 50 message limit")
	ErrMessageTooLong  = errors.New("chat message exceeds the 10KB limit")
	ErrBadRole         = errors.New("chat message role must be user or model")
)

const (
	maxChatMessages    = 50
	maxChatMessageSize = 10 * 1024
)

// Assistant is the client for the model gateway.
type Assistant struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// New builds an Assistant against the gateway with the given key and model.
func New(ctx context.Context, apiKey, modelName string) (*Assistant, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("genai client init failed: %w", err)
	}
	return &Assistant{client: client, model: client.GenerativeModel(modelName)}, nil
}

// Close releases the underlying connection.
func (a *Assistant) Close() error {
	if a == nil || a.client == nil {
		return nil
	}
	return a.client.Close()
}

// ImageAssessment is the structured result of an image health analysis.
type ImageAssessment struct {
	HealthScore     int      `json:"health_score"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
	Degraded        bool     `json:"degraded,omitempty"`
}

// neutralAssessment is the fixed fallback when the upstream response is
// unusable. It is returned, never silently dropped.
func neutralAssessment() *ImageAssessment {
	return &ImageAssessment{
		HealthScore:     50,
		Findings:        []string{"Automatic analysis was unavailable for this image."},
		Recommendations: []string{"Retry with a clear, well-lit photo of the plant."},
		Degraded:        true,
	}
}

const analyzePrompt = `You are an agronomist reviewing a photo of a %s plant.
Respond with JSON only, using this exact shape:
{"health_score": <0-100 integer>, "findings": ["..."], "recommendations": ["..."]}`

// AnalyzeCropImage validates and submits a base64 image for health
// assessment. Validation failures return an error; upstream failures and
// unparseable responses degrade to the fixed neutral payload.
func (a *Assistant) AnalyzeCropImage(ctx context.Context, cropName, imageBase64 string) (*ImageAssessment, error) {
	decoded, mimeType, err := ValidateImage(imageBase64)
	if err != nil {
		return nil, err
	}

	resp, err := a.model.GenerateContent(ctx,
		genai.Text(fmt.Sprintf(analyzePrompt, cropName)),
		genai.Blob{MIMEType: mimeType, Data: decoded},
	)
	if err != nil {
		slog.Warn("image analysis upstream failed, using neutral fallback", "error", err)
		return neutralAssessment(), nil
	}

	text, ok := firstTextPart(resp)
	if !ok {
		slog.Warn("image analysis returned no text, using neutral fallback")
		return neutralAssessment(), nil
	}

	var assessment ImageAssessment
	if err := json.Unmarshal([]byte(stripJSONFences(text)), &assessment); err != nil {
		slog.Warn("image analysis response was not parseable JSON, using neutral fallback",
			"error", err, "response_length", len(text))
		return neutralAssessment(), nil
	}

	if assessment.HealthScore < 0 {
		assessment.HealthScore = 0
	}
	if assessment.HealthScore > 100 {
		assessment.HealthScore = 100
	}
	return &assessment, nil
}

// ValidateImage decodes and checks a base64 image against the boundary
// constraints, returning the raw bytes and detected MIME type.
func ValidateImage(imageBase64 string) ([]byte, string, error) {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(imageBase64))
	if err != nil {
		return nil, "", ErrImageNotBase64
	}
	if len(decoded) > maxImageBytes {
		return nil, "", ErrImageTooLarge
	}
	mimeType, ok := detectImageMIMEType(decoded)
	if !ok {
		return nil, "", ErrImageBadType
	}
	return decoded, mimeType, nil
}

// ChatMessage is one turn of the conversational assistant's history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ValidateChatHistory enforces the boundary limits on a chat payload.
func ValidateChatHistory(messages []ChatMessage) error {
	if len(messages) == 0 {
		return errors.New("chat history must not be empty")
	}
	if len(messages) > maxChatMessages {
		return ErrTooManyMessages
	}
	for _, m := range messages {
		if len(m.Content) > maxChatMessageSize {
			return ErrMessageTooLong
		}
		if m.Role != "user" && m.Role != "model" {
			return ErrBadRole
		}
	}
	return nil
}

// Chat streams the assistant's reply to the final message, with the earlier
// messages supplied as history. Each chunk of text is passed to emit as it
// arrives. Upstream errors surface to the caller.
func (a *Assistant) Chat(ctx context.Context, messages []ChatMessage, emit func(chunk string) error) error {
	if err := ValidateChatHistory(messages); err != nil {
		return err
	}

	session := a.model.StartChat()
	for _, m := range messages[:len(messages)-1] {
		session.History = append(session.History, &genai.Content{
			Role:  m.Role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	last := messages[len(messages)-1]
	stream := session.SendMessageStream(ctx, genai.Text(last.Content))
	for {
		resp, err := stream.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("chat upstream failed: %w", err)
		}
		if text, ok := firstTextPart(resp); ok {
			if err := emit(text); err != nil {
				return err
			}
		}
	}
}

func firstTextPart(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", false
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), true
		}
	}
	return "", false
}

// stripJSONFences removes a markdown code fence if the model wrapped its
// JSON in one.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// detectImageMIMEType sniffs the image type from magic bytes. Only the
// accepted upload types are recognized.
func detectImageMIMEType(data []byte) (string, bool) {
	if len(data) < 12 {
		return "", false
	}

	// PNG: 89 50 4E 47
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return "image/png", true
	}

	// JPEG: FF D8 FF
	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return "image/jpeg", true
	}

	// GIF: 47 49 46 38
	if data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46 && data[3] == 0x38 {
		return "image/gif", true
	}

	// WebP: RIFF....WEBP
	if data[0] == 0x52 && data[1] == 0x49 && data[2] == 0x46 && data[3] == 0x46 &&
		data[8] == 0x57 && data[9] == 0x45 && data[10] == 0x42 && data[11] == 0x50 {
		return "image/webp", true
	}

	return "", false
}
