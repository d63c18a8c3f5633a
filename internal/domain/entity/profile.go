package entity

import "time"

// Profile representa o perfil de uma identidade autenticada.
// Invariante: exatamente um perfil por identidade; criado na primeira entrada
// se ainda não existir, nunca apagado.
type Profile struct {
	UID             string
	Email           string
	PasswordHash    string // hash bcrypt, nunca em claro no domínio após persistir
	FullName        string
	ArtistName      string
	Bio             string // opcional, máx. 280 caracteres
	PreferredStyle  string // opcional
	PreferredRhythm string // opcional
	Role            Role
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MaxBioLength limite da biografia do artista (alinha com a saída do gerador de bio).
const MaxBioLength = 280
