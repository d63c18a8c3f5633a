package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gracetone/gracetone-connect/internal/application/dto"
	"github.com/gracetone/gracetone-connect/internal/application/ports"
	"github.com/gracetone/gracetone-connect/internal/domain"
	"github.com/gracetone/gracetone-connect/internal/domain/entity"
	"github.com/gracetone/gracetone-connect/pkg/logger"
)

// FallbackMessage texto devolvido à visão quando o serviço de IA falha ou
// não devolve texto. O chamador nunca recebe a exceção crua.
const FallbackMessage = "Ocorreu um erro ao gerar o texto. Por favor, tente novamente."

// AIConfig opções do caso de uso de IA.
type AIConfig struct {
	Timeout    time.Duration // limite por chamada ao LLM; o provedor não impõe o seu
	BioEnabled bool          // feature flag: geração de biografia no app
}

// AIUseCase orquestra os dois auxiliares de texto (bio do artista e resumo
// de pedido). Toda chamada ao LLM leva context.WithTimeout; falhas degradam
// para a mensagem de fallback em vez de propagar erro para a visão.
type AIUseCase struct {
	llm ports.LLMService
	cfg AIConfig
	log *logger.Logger
}

// NewAIUseCase constrói o caso de uso injetando a porta LLMService.
func NewAIUseCase(llm ports.LLMService, cfg AIConfig, log *logger.Logger) *AIUseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &AIUseCase{llm: llm, cfg: cfg, log: log}
}

// GenerateBio gera a biografia do artista (primeira pessoa, máx. 280 caracteres).
// Devolve ErrBioDisabled quando a feature flag está desligada e ErrInvalidInput
// sem nome artístico; falhas do LLM degradam para o fallback (Degraded=true).
func (uc *AIUseCase) GenerateBio(ctx context.Context, in dto.GenerateBioRequest) (*dto.GenerateBioResponse, error) {
	if !uc.cfg.BioEnabled {
		return nil, domain.ErrBioDisabled
	}
	if strings.TrimSpace(in.ArtistName) == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	bio, err := uc.llm.GenerateBio(ctx, in)
	bio = strings.TrimSpace(bio)
	if err != nil || bio == "" {
		uc.log.Warn().Err(err).Str("artist", in.ArtistName).Msg("geração de bio degradada para fallback")
		return &dto.GenerateBioResponse{Bio: FallbackMessage, Degraded: true}, nil
	}
	if utf8.RuneCountInString(bio) > entity.MaxBioLength {
		bio = truncateRunes(bio, entity.MaxBioLength)
	}
	return &dto.GenerateBioResponse{Bio: bio}, nil
}

// SummarizeOrder gera o resumo operacional em markdown dos campos do pedido.
// Consultivo: nunca altera o pedido. Falhas degradam para o fallback.
func (uc *AIUseCase) SummarizeOrder(ctx context.Context, in dto.SummarizeOrderRequest) (*dto.SummarizeOrderResponse, error) {
	if strings.TrimSpace(in.Artist) == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	summary, err := uc.llm.SummarizeOrder(ctx, in)
	summary = strings.TrimSpace(summary)
	if err != nil || summary == "" {
		uc.log.Warn().Err(err).Str("artist", in.Artist).Msg("resumo de pedido degradado para fallback")
		return &dto.SummarizeOrderResponse{Summary: FallbackMessage, Degraded: true}, nil
	}
	return &dto.SummarizeOrderResponse{Summary: summary}, nil
}

// truncateRunes corta em limite de runas sem partir um caractere multibyte.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
