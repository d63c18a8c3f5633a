package ports

import (
	"context"

	"github.com/gracetone/gracetone-connect/internal/application/dto"
)

// LLMService porta de saída para os serviços de geração de texto.
// Qualquer adaptador (Gemini, Anthropic, mock) deve implementar esta interface.
// A camada de aplicação só conhece este contrato, não a implementação concreta.
type LLMService interface {
	// GenerateBio escreve uma biografia curta (máx. 280 caracteres, primeira pessoa)
	// a partir do nome artístico e das preferências musicais.
	// O contexto deve levar um timeout: a latência do provedor externo não é limitada.
	GenerateBio(ctx context.Context, in dto.GenerateBioRequest) (string, error)

	// SummarizeOrder produz um resumo operacional em markdown (pontos-chave,
	// sugestões de produção, desafios, prioridade) dos campos de um pedido.
	SummarizeOrder(ctx context.Context, in dto.SummarizeOrderRequest) (string, error)
}
