package dto

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gracetone/gracetone-connect/internal/domain/entity"
)

// CreateOrderRequest payload do formulário de pedido.
type CreateOrderRequest struct {
	Artist      string `json:"artist"`
	Contact     string `json:"contact"`
	ServiceType string `json:"serviceType"`
	Style       string `json:"style"`
	Rhythm      string `json:"rhythm"`
	Objective   string `json:"objective"`
	Description string `json:"description"`
}

// Validate aplica as regras do formulário e devolve erros campo a campo.
// Mapa vazio = payload válido; qualquer entrada = rejeição sem escrita (tudo ou nada).
func (r CreateOrderRequest) Validate() map[string]string {
	fields := map[string]string{}
	if utf8.RuneCountInString(strings.TrimSpace(r.Artist)) < 2 {
		fields["artist"] = "o nome do artista deve ter pelo menos 2 caracteres"
	}
	if utf8.RuneCountInString(strings.TrimSpace(r.Contact)) < 5 {
		fields["contact"] = "o contato deve ter pelo menos 5 caracteres"
	}
	if !entity.ValidServiceType(r.ServiceType) {
		fields["serviceType"] = "tipo de serviço inválido"
	}
	if strings.TrimSpace(r.Style) == "" {
		fields["style"] = "o estilo musical é obrigatório"
	}
	if strings.TrimSpace(r.Rhythm) == "" {
		fields["rhythm"] = "o ritmo é obrigatório"
	}
	if !entity.ValidObjective(r.Objective) {
		fields["objective"] = "objetivo inválido"
	}
	descLen := utf8.RuneCountInString(strings.TrimSpace(r.Description))
	if descLen < 10 || descLen > 500 {
		fields["description"] = "a descrição deve ter entre 10 e 500 caracteres"
	}
	return fields
}

// UpdateOrderStatusRequest transição de estado de um pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrderResponse identificador do pedido criado.
type CreateOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// OrderResponse pedido devolvido pela API.
type OrderResponse struct {
	ID          string    `json:"id"`
	Artist      string    `json:"artist"`
	Contact     string    `json:"contact"`
	ServiceType string    `json:"serviceType"`
	Style       string    `json:"style"`
	Rhythm      string    `json:"rhythm"`
	Objective   string    `json:"objective"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToOrderResponse converte a entidade para o DTO de resposta.
func ToOrderResponse(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		Artist:      o.Artist,
		Contact:     o.Contact,
		ServiceType: o.ServiceType,
		Style:       o.Style,
		Rhythm:      o.Rhythm,
		Objective:   o.Objective,
		Description: o.Description,
		Status:      o.Status,
		UserID:      o.UserID,
		CreatedAt:   o.CreatedAt,
	}
}
