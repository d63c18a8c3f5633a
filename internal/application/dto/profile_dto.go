package dto

import (
	"unicode/utf8"

	"github.com/gracetone/gracetone-connect/internal/domain/entity"
)

// UpdateProfileRequest campos de autosserviço do perfil. Role nunca entra aqui:
// a troca de papel tem rota própria restrita a admin.
type UpdateProfileRequest struct {
	FullName        string `json:"fullName"`
	ArtistName      string `json:"artistName"`
	Bio             string `json:"bio"`
	PreferredStyle  string `json:"preferredStyle"`
	PreferredRhythm string `json:"preferredRhythm"`
}

// Validate devolve erros campo a campo; mapa vazio significa payload válido.
func (r UpdateProfileRequest) Validate() map[string]string {
	fields := map[string]string{}
	if utf8.RuneCountInString(r.FullName) < 2 {
		fields["fullName"] = "o nome deve ter pelo menos 2 caracteres"
	}
	if utf8.RuneCountInString(r.ArtistName) < 2 {
		fields["artistName"] = "o nome artístico deve ter pelo menos 2 caracteres"
	}
	if utf8.RuneCountInString(r.Bio) > entity.MaxBioLength {
		fields["bio"] = "a biografia deve ter no máximo 280 caracteres"
	}
	return fields
}

// UpdateRoleRequest troca de papel de um perfil (apenas admin).
type UpdateRoleRequest struct {
	Role string `json:"role"`
}
