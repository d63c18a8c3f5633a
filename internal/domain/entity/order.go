package entity

import "time"

// Estados do ciclo de vida de um pedido. Avançam monotonicamente e apenas
// staff/admin transicionam; Arquivado é o soft delete terminal.
const (
	StatusNovo       = "Novo"
	StatusEmAnalise  = "Em Análise"
	StatusContactado = "Contactado"
	StatusArquivado  = "Arquivado"
)

// statusRank ordem dos estados para a checagem de monotonicidade.
var statusRank = map[string]int{
	StatusNovo:       0,
	StatusEmAnalise:  1,
	StatusContactado: 2,
	StatusArquivado:  3,
}

// StatusRank devolve a posição do estado no ciclo de vida; ok=false para estados desconhecidos.
func StatusRank(status string) (int, bool) {
	rank, ok := statusRank[status]
	return rank, ok
}

// Tipos de serviço aceitos no formulário de pedido.
const (
	ServiceCreation     = "creation"
	ServiceRecreation   = "recreation"
	ServiceInstrumental = "instrumental"
	ServiceProduction   = "production"
)

// Objetivos aceitos para a música encomendada.
const (
	ObjectivePersonal   = "personal"
	ObjectiveChurch     = "church"
	ObjectiveCommercial = "commercial"
)

// ValidServiceType informa se o tipo de serviço pertence à enumeração fechada.
func ValidServiceType(s string) bool {
	switch s {
	case ServiceCreation, ServiceRecreation, ServiceInstrumental, ServiceProduction:
		return true
	}
	return false
}

// ValidObjective informa se o objetivo pertence à enumeração fechada.
func ValidObjective(s string) bool {
	switch s {
	case ObjectivePersonal, ObjectiveChurch, ObjectiveCommercial:
		return true
	}
	return false
}

// Order representa um pedido de produção musical enviado por um cliente.
// CreatedAt é definido uma única vez na criação; o registro nunca é apagado.
type Order struct {
	ID          string
	Artist      string
	Contact     string
	ServiceType string
	Style       string
	Rhythm      string
	Objective   string
	Description string
	Status      string
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Active informa se o pedido pertence à visão ativa (derivada, não armazenada).
func (o *Order) Active() bool {
	return o.Status != StatusArquivado
}
