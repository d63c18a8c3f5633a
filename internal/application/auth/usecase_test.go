package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracetone/gracetone-connect/internal/application/auth"
	"github.com/gracetone/gracetone-connect/internal/application/dto"
	"github.com/gracetone/gracetone-connect/internal/domain"
	"github.com/gracetone/gracetone-connect/internal/domain/entity"
	pkgjwt "github.com/gracetone/gracetone-connect/pkg/jwt"
)

const studioAdminEmail = "gracetonestudios@gmail.com"

// mockProfileRepo repositório de perfis em memória para os testes.
type mockProfileRepo struct {
	byUID   map[string]*entity.Profile
	byEmail map[string]*entity.Profile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{
		byUID:   make(map[string]*entity.Profile),
		byEmail: make(map[string]*entity.Profile),
	}
}

func (m *mockProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	cp := *p
	m.byUID[p.UID] = &cp
	m.byEmail[p.Email] = &cp
	return nil
}

func (m *mockProfileRepo) GetByUID(_ context.Context, uid string) (*entity.Profile, error) {
	p, ok := m.byUID[uid]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockProfileRepo) GetByEmail(_ context.Context, email string) (*entity.Profile, error) {
	p, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockProfileRepo) Update(_ context.Context, p *entity.Profile) error {
	cp := *p
	m.byUID[p.UID] = &cp
	m.byEmail[p.Email] = &cp
	return nil
}

func (m *mockProfileRepo) UpdateRole(_ context.Context, uid string, role entity.Role) error {
	if p, ok := m.byUID[uid]; ok {
		p.Role = role
	}
	return nil
}

func newAuthUC(repo *mockProfileRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "gracetone-connect-test",
	}, studioAdminEmail)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_NovoPerfilComecaComoClient(t *testing.T) {
	uc := newAuthUC(newMockProfileRepo())

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:      "Artista@Example.com",
		Password:   "senha-muito-segura",
		FullName:   "Maria da Graça",
		ArtistName: "Graça",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "artista@example.com", out.Email, "e-mail normalizado para minúsculas")
	assert.Equal(t, string(entity.RoleClient), out.Role, "papel inicial é sempre client")
	assert.NotEmpty(t, out.UID)
}

func TestRegister_EmailReservadoDoEstudio_RecebeAdmin(t *testing.T) {
	uc := newAuthUC(newMockProfileRepo())

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "GraceToneStudios@gmail.com",
		Password: "senha-muito-segura",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.RoleAdmin), out.Role,
		"o e-mail administrativo reservado recebe sempre o papel admin")
}

func TestRegister_EmailDuplicado_Rejeitado(t *testing.T) {
	repo := newMockProfileRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "artista@example.com", Password: "senha-muito-segura",
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		Email: "ARTISTA@example.com", Password: "outra-senha",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_NomesVazios_RecebemDefaults(t *testing.T) {
	uc := newAuthUC(newMockProfileRepo())

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "novo@example.com", Password: "senha-muito-segura",
	})
	require.NoError(t, err)
	assert.Equal(t, "Novo Usuário", out.FullName)
	assert.Equal(t, "Novo Artista", out.ArtistName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredenciaisValidas_DevolveTokenComRole(t *testing.T) {
	repo := newMockProfileRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "artista@example.com", Password: "senha-muito-segura",
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "artista@example.com", Password: "senha-muito-segura",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	uid, email, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Profile.UID, uid)
	assert.Equal(t, "artista@example.com", email)
	assert.Equal(t, "client", role, "o papel viaja no token para o middleware")
}

func TestLogin_SenhaErrada_Rejeitada(t *testing.T) {
	repo := newMockProfileRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "artista@example.com", Password: "senha-muito-segura",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "artista@example.com", Password: "senha-errada",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_PerfilInexistente(t *testing.T) {
	uc := newAuthUC(newMockProfileRepo())

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ninguem@example.com", Password: "qualquer",
	})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// EnsureProfile: criação preguiçosa
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureProfile_CriaNaPrimeiraEntrada(t *testing.T) {
	repo := newMockProfileRepo()
	uc := newAuthUC(repo)

	p, err := uc.EnsureProfile(context.Background(), "uid-ext-1", "novo@example.com", "Nome Externo")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, entity.RoleClient, p.Role)
	assert.Equal(t, "Nome Externo", p.FullName)

	// Segunda chamada devolve o perfil existente sem recriar.
	again, err := uc.EnsureProfile(context.Background(), "uid-ext-1", "novo@example.com", "Outro Nome")
	require.NoError(t, err)
	assert.Equal(t, p.FullName, again.FullName, "perfil existente não é sobrescrito")
}

func TestEnsureProfile_EmailReservado_RecebeAdmin(t *testing.T) {
	uc := newAuthUC(newMockProfileRepo())

	p, err := uc.EnsureProfile(context.Background(), "uid-admin", studioAdminEmail, "GraceTone")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, p.Role)
}
