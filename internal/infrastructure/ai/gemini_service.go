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

// Verificação em tempo de compilação de que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const (
	// bioSystemPrompt define o papel do modelo para a biografia do artista.
	bioSystemPrompt = `Você é um especialista em marketing para músicos cristãos na GraceTone.
Sua tarefa é escrever uma biografia curta e impactante (no máximo 280 caracteres) para um artista.

A biografia deve ser inspiradora, profissional e adequada para um público gospel.
Concentre-se em transmitir a paixão e o ministério do artista através da música.
Escreva na primeira pessoa e gere apenas o texto da biografia, sem títulos nem aspas.`

	// summarySystemPrompt define o papel do modelo para o resumo operacional de pedido.
	summarySystemPrompt = `Você é um produtor musical experiente na GraceTone, especialista em música gospel.
Sua tarefa é analisar os detalhes de um novo pedido e criar um resumo conciso e útil em formato de tópicos (markdown) para a equipe de produção.

O resumo deve incluir exatamente estas seções:
- **Pontos-Chave:** um ou dois pontos principais da visão do artista.
- **Sugestões de Produção:** sugestões iniciais de instrumentação, arranjo ou abordagem vocal.
- **Possíveis Desafios:** ambiguidades ou desafios técnicos identificados.
- **Prioridade Sugerida:** Baixa, Média ou Alta.

O resumo deve ser curto, direto e prático, sem omitir detalhes importantes. Retorne apenas o texto em markdown.`
)

// GeminiConfig opções do adaptador Gemini.
type GeminiConfig struct {
	APIKey  string
	Model   string // ex.: "gemini-1.5-flash"
	BaseURL string // vazio = endpoint oficial; sobrescrito nos testes
}

// GeminiService adaptador que implementa LLMService chamando a API REST do
// Google Gemini. Usa apenas net/http da biblioteca padrão; não requer o SDK oficial.
type GeminiService struct {
	cfg        GeminiConfig
	httpClient *http.Client
}

// NewGeminiService constrói o adaptador.
// Se a API key estiver vazia as chamadas devolvem erro descritivo em vez de panic.
func NewGeminiService(cfg GeminiConfig) *GeminiService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGeminiBaseURL
	}
	return &GeminiService{
		cfg: cfg,
		httpClient: &http.Client{
			// Timeout de rede; o use case impõe além disso um context.WithTimeout.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estruturas internas da API do Gemini ──────────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementação da porta ────────────────────────────────────────────────────

// GenerateBio chama o Gemini com o nome artístico e as preferências musicais.
func (s *GeminiService) GenerateBio(ctx context.Context, in dto.GenerateBioRequest) (string, error) {
	userText := fmt.Sprintf("Nome do Artista: %s\nEstilo Musical: %s\nRitmo Preferido: %s",
		in.ArtistName, in.PreferredStyle, in.PreferredRhythm)
	return s.generate(ctx, bioSystemPrompt, userText, 160)
}

// SummarizeOrder chama o Gemini com os campos estruturados do pedido.
func (s *GeminiService) SummarizeOrder(ctx context.Context, in dto.SummarizeOrderRequest) (string, error) {
	userText := fmt.Sprintf(
		"- Artista: %s\n- Tipo de Serviço: %s\n- Estilo Musical: %s\n- Ritmo/Andamento: %s\n- Objetivo: %s\n- Descrição do Artista: %s",
		in.Artist, in.ServiceType, in.Style, in.Rhythm, in.Objective, in.Description)
	return s.generate(ctx, summarySystemPrompt, userText, 512)
}

func (s *GeminiService) generate(ctx context.Context, systemPrompt, userText string, maxTokens int) (string, error) {
	if s.cfg.APIKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY não configurado")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: userText}},
			},
		},
		GenerationConfig: genConfig{
			Temperature:     0.7,
			MaxOutputTokens: maxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.cfg.BaseURL, s.cfg.Model, s.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: criar HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

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
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini erro %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: desserializar resposta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolveu resposta vazia")
	}

	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
