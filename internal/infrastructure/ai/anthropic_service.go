package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gracetone/gracetone-connect/internal/application/dto"
	"github.com/gracetone/gracetone-connect/internal/application/ports"
)

// Verificação em tempo de compilação de que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
)

// AnthropicConfig opções do adaptador Anthropic.
type AnthropicConfig struct {
	APIKey  string
	Model   string // ex.: "claude-3-5-haiku-20241022"
	BaseURL string // vazio = endpoint oficial; sobrescrito nos testes
}

// AnthropicService adaptador que implementa LLMService usando a API REST da
// Anthropic (Claude). Usa net/http da biblioteca padrão; não requer o SDK oficial.
type AnthropicService struct {
	cfg        AnthropicConfig
	httpClient *http.Client
}

// NewAnthropicService constrói o adaptador.
// Se a API key estiver vazia as chamadas devolvem erro descritivo em vez de panic.
func NewAnthropicService(cfg AnthropicConfig) *AnthropicService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultAnthropicBaseURL
	}
	return &AnthropicService{
		cfg: cfg,
		httpClient: &http.Client{
			// Timeout de rede; o use case impõe além disso um context.WithTimeout.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estruturas internas do protocolo Anthropic Messages API ───────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementação da porta ────────────────────────────────────────────────────

// GenerateBio chama o Claude com o nome artístico e as preferências musicais.
func (s *AnthropicService) GenerateBio(ctx context.Context, in dto.GenerateBioRequest) (string, error) {
	userText := fmt.Sprintf("Nome do Artista: %s\nEstilo Musical: %s\nRitmo Preferido: %s",
		in.ArtistName, in.PreferredStyle, in.PreferredRhythm)
	return s.generate(ctx, bioSystemPrompt, userText, 256)
}

// SummarizeOrder chama o Claude com os campos estruturados do pedido.
func (s *AnthropicService) SummarizeOrder(ctx context.Context, in dto.SummarizeOrderRequest) (string, error) {
	userText := fmt.Sprintf(
		"- Artista: %s\n- Tipo de Serviço: %s\n- Estilo Musical: %s\n- Ritmo/Andamento: %s\n- Objetivo: %s\n- Descrição do Artista: %s",
		in.Artist, in.ServiceType, in.Style, in.Rhythm, in.Objective, in.Description)
	return s.generate(ctx, summarySystemPrompt, userText, 1024)
}

func (s *AnthropicService) generate(ctx context.Context, systemPrompt, userText string, maxTokens int) (string, error) {
	if s.cfg.APIKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY não configurado")
	}

	payload := anthropicRequest{
		Model:     s.cfg.Model,
		MaxTokens: maxTokens,
		System:    systemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: userText},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: criar HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.cfg.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout ou cancelamento: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic erro (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: desserializar resposta Anthropic: %w", err)
	}

	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("AI: Claude devolveu resposta vazia")
	}

	return strings.TrimSpace(anthResp.Content[0].Text), nil
}
