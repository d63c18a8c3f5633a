package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gracetone/gracetone-connect/internal/application/dto"
	"github.com/gracetone/gracetone-connect/internal/domain"
	"github.com/gracetone/gracetone-connect/internal/domain/entity"
	"github.com/gracetone/gracetone-connect/internal/domain/repository"
	"github.com/gracetone/gracetone-connect/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: registro, login e criação
// preguiçosa do perfil na primeira entrada.
type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	jwtCfg      JWTConfig
	adminEmail  string // e-mail reservado do estúdio: perfil sempre admin
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(profileRepo repository.ProfileRepository, jwtCfg JWTConfig, adminEmail string) *AuthUseCase {
	return &AuthUseCase{profileRepo: profileRepo, jwtCfg: jwtCfg, adminEmail: strings.ToLower(adminEmail)}
}

// roleForEmail aplica a regra do e-mail administrativo reservado.
func (uc *AuthUseCase) roleForEmail(email string) entity.Role {
	if strings.EqualFold(email, uc.adminEmail) {
		return entity.RoleAdmin
	}
	return entity.RoleClient
}

// Register cria uma identidade: hasheia a senha com bcrypt e persiste o perfil.
// Devolve ErrEmailAlreadyExists se o e-mail já estiver registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.ProfileResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		fullName = "Novo Usuário"
	}
	artistName := strings.TrimSpace(in.ArtistName)
	if artistName == "" {
		artistName = "Novo Artista"
	}
	profile := &entity.Profile{
		UID:          uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		ArtistName:   artistName,
		Role:         uc.roleForEmail(email),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return ToProfileResponse(profile), nil
}

// Login verifica e-mail/senha, gera o JWT e devolve token + perfil.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	profile, err := uc.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.UID, profile.Email, string(profile.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Profile: *ToProfileResponse(profile),
	}, nil
}

// EnsureProfile devolve o perfil do uid, criando-o se ainda não existir.
// É a criação preguiçosa do perfil na primeira entrada autenticada.
func (uc *AuthUseCase) EnsureProfile(ctx context.Context, uid, email, displayName string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}
	now := time.Now()
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = "Novo Usuário"
	}
	profile = &entity.Profile{
		UID:        uid,
		Email:      strings.ToLower(email),
		FullName:   name,
		ArtistName: name,
		Role:       uc.roleForEmail(email),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ToProfileResponse converte a entidade para o DTO de resposta (sem hash).
func ToProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		UID:             p.UID,
		Email:           p.Email,
		FullName:        p.FullName,
		ArtistName:      p.ArtistName,
		Bio:             p.Bio,
		PreferredStyle:  p.PreferredStyle,
		PreferredRhythm: p.PreferredRhythm,
		Role:            string(p.Role),
		CreatedAt:       p.CreatedAt,
	}
}
