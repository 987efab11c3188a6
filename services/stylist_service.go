package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Violet-Essentials/violet-storefront-backend/catalog"
	"github.com/Violet-Essentials/violet-storefront-backend/config"
	"github.com/Violet-Essentials/violet-storefront-backend/models"
	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
)

const (
	// Shown when the inference service fails for any reason. The transcript
	// always gains exactly one assistant turn per user turn.
	stylistFallbackReply = "I'm having trouble connecting to the fashion mainframe right now. Please try again later."

	// Shown when the service answers with empty text.
	stylistEmptyReply = "I'm having a fashion moment... let me think again."

	stylistGreeting = "Hi! I'm Vi, your personal stylist. Looking for something specific or need outfit inspiration? ✨"
)

type completeFunc func(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)

// StylistService mediates the conversation with "Vi", the AI stylist. The
// session is a lazy singleton: it is created on the first chat call and
// lives for the process lifetime. The catalog context in the system
// instruction is cached against the store version and rebuilt whenever the
// catalog changes, so new listings are visible to the stylist immediately.
type StylistService struct {
	store    *catalog.Store
	model    shared.ChatModel
	complete completeFunc

	mu             sync.Mutex
	session        *stylistSession
	catalogVersion uint64
	instruction    string
}

type stylistSession struct {
	id       string
	messages []models.ChatMessage
}

// NewStylistService wires the stylist against an OpenAI-compatible
// endpoint. A custom base URL covers self-hosted inference servers.
func NewStylistService(store *catalog.Store, cfg config.StylistConfig) *StylistService {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := openai.NewClient(opts...)

	return &StylistService{
		store: store,
		model: shared.ChatModel(cfg.Model),
		complete: func(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
			return client.Chat.Completions.New(ctx, params)
		},
	}
}

// Send appends the user turn, makes exactly one completion attempt and
// appends the stylist's reply. Failures never propagate: the reply turn is
// the fixed fallback string and the error is logged. Sends are serialized
// per session; the session mutex is held across the round trip.
func (s *StylistService) Send(ctx context.Context, userText string) (string, models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.ensureSession()
	session.messages = append(session.messages, models.ChatMessage{
		Role:      models.RoleUser,
		Text:      userText,
		CreatedAt: time.Now().UTC(),
	})

	reply := models.ChatMessage{
		Role:      models.RoleAssistant,
		Text:      s.requestReply(ctx, session),
		CreatedAt: time.Now().UTC(),
	}
	session.messages = append(session.messages, reply)
	return session.id, reply
}

// Transcript returns the session id and a copy of the visible conversation
// log, creating the session if this is the first call.
func (s *StylistService) Transcript() (string, []models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.ensureSession()
	out := make([]models.ChatMessage, len(session.messages))
	copy(out, session.messages)
	return session.id, out
}

func (s *StylistService) ensureSession() *stylistSession {
	if s.session == nil {
		s.session = &stylistSession{
			id: newSessionID(),
			messages: []models.ChatMessage{{
				Role:      models.RoleAssistant,
				Text:      stylistGreeting,
				CreatedAt: time.Now().UTC(),
			}},
		}
		log.Printf("✅ Stylist session %s created", s.session.id)
	}
	return s.session
}

func (s *StylistService) requestReply(ctx context.Context, session *stylistSession) string {
	params := openai.ChatCompletionNewParams{
		Messages: buildMessages(s.systemInstruction(), session.messages),
		Model:    s.model,
	}

	completion, err := s.complete(ctx, params)
	if err != nil {
		log.Printf("[stylist] completion failed for session %s: %v", session.id, err)
		return stylistFallbackReply
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return stylistEmptyReply
	}
	return completion.Choices[0].Message.Content
}

// systemInstruction returns the catalog-aware system prompt, rebuilding it
// only when the store has changed since the last send. Callers hold s.mu.
func (s *StylistService) systemInstruction() string {
	if version := s.store.Version(); s.instruction == "" || version != s.catalogVersion {
		s.instruction = buildSystemInstruction(s.store.Products())
		s.catalogVersion = version
	}
	return s.instruction
}

// buildMessages replays the transcript behind the system instruction.
func buildMessages(instruction string, transcript []models.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(transcript)+1)
	messages = append(messages, openai.SystemMessage(instruction))
	for _, m := range transcript {
		if m.Role == models.RoleUser {
			messages = append(messages, openai.UserMessage(m.Text))
		} else {
			messages = append(messages, openai.AssistantMessage(m.Text))
		}
	}
	return messages
}

func buildSystemInstruction(products []models.Product) string {
	var catalogContext strings.Builder
	for _, p := range products {
		fmt.Fprintf(&catalogContext, "- %s (%s): R%.2f, Category: %s\n", p.Name, p.Brand, p.Price, p.Category)
	}

	return fmt.Sprintf(`You are "Vi", the personal AI Stylist for Violet Essentials.

Your goal is to help customers find products from our catalog.
Be chic, helpful, and concise. Use emojis occasionally 👗✨.

Here is the current product catalog available on the page:
%s
Rules:
1. Only recommend products from this list.
2. If a user asks for something we don't have, politely suggest a similar category or item from the list.
3. Keep responses short (under 50 words) unless describing a full outfit.
4. Always mention the price when recommending an item.`, catalogContext.String())
}
