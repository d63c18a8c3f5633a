package dto

// GenerateBioRequest entrada do gerador de biografia de artista.
type GenerateBioRequest struct {
	ArtistName      string `json:"artistName"`
	PreferredStyle  string `json:"preferredStyle"`
	PreferredRhythm string `json:"preferredRhythm"`
}

// GenerateBioResponse biografia gerada. Degraded indica que o serviço de IA
// falhou e Bio carrega a mensagem de fallback, não texto do modelo.
type GenerateBioResponse struct {
	Bio      string `json:"bio"`
	Degraded bool   `json:"degraded,omitempty"`
}

// SummarizeOrderRequest entrada do resumo de pedido para a equipe de produção.
type SummarizeOrderRequest struct {
	Artist      string `json:"artist"`
	ServiceType string `json:"serviceType"`
	Style       string `json:"style"`
	Rhythm      string `json:"rhythm"`
	Objective   string `json:"objective"`
	Description string `json:"description"`
}

// SummarizeOrderResponse resumo em markdown. Consultivo: nunca altera o pedido.
type SummarizeOrderResponse struct {
	Summary  string `json:"summary"`
	Degraded bool   `json:"degraded,omitempty"`
}
