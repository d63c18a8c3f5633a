package dto

import "time"

// RegisterRequest payload de registro de identidade.
type RegisterRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"fullName"`
	ArtistName string `json:"artistName"`
}

// LoginRequest payload de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileResponse perfil devolvido pela API (sem hash de senha).
type ProfileResponse struct {
	UID             string    `json:"uid"`
	Email           string    `json:"email"`
	FullName        string    `json:"fullName"`
	ArtistName      string    `json:"artistName"`
	Bio             string    `json:"bio,omitempty"`
	PreferredStyle  string    `json:"preferredStyle,omitempty"`
	PreferredRhythm string    `json:"preferredRhythm,omitempty"`
	Role            string    `json:"role"`
	CreatedAt       time.Time `json:"createdAt"`
}

// LoginResponse token + perfil do usuário autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}
