package repository

import (
	"context"

	"github.com/gracetone/gracetone-connect/internal/domain/entity"
)

// ProfileRepository porta de persistência de perfis.
// Gets devolvem (nil, nil) quando o perfil não existe.
type ProfileRepository interface {
	Create(ctx context.Context, p *entity.Profile) error
	GetByUID(ctx context.Context, uid string) (*entity.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
	// Update persiste os campos de autosserviço (nome, nome artístico, bio, preferências).
	Update(ctx context.Context, p *entity.Profile) error
	// UpdateRole muda apenas o papel; restrito a admin na camada de aplicação.
	UpdateRole(ctx context.Context, uid string, role entity.Role) error
}
