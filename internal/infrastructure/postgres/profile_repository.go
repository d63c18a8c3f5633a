package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gracetone/gracetone-connect/internal/domain"
	"github.com/gracetone/gracetone-connect/internal/domain/entity"
	"github.com/gracetone/gracetone-connect/internal/domain/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementação da porta ProfileRepository sobre PostgreSQL.
// Tabela users: uma linha por identidade (chave uid), nunca apagada.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

// NewProfileRepository constrói o adaptador de persistência de perfis.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

const profileColumns = `uid, email, password_hash, full_name, artist_name, bio, preferred_style, preferred_rhythm, role, created_at, updated_at`

// Create persiste um novo perfil.
func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO users (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		p.UID, p.Email, p.PasswordHash, p.FullName, p.ArtistName,
		p.Bio, p.PreferredStyle, p.PreferredRhythm, string(p.Role),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByUID obtém um perfil por uid; (nil, nil) se não existir.
func (r *ProfileRepo) GetByUID(ctx context.Context, uid string) (*entity.Profile, error) {
	return r.queryOne(ctx, `SELECT `+profileColumns+` FROM users WHERE uid = $1`, uid)
}

// GetByEmail obtém um perfil por e-mail; (nil, nil) se não existir.
func (r *ProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return r.queryOne(ctx, `SELECT `+profileColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
}

func (r *ProfileRepo) queryOne(ctx context.Context, query string, arg any) (*entity.Profile, error) {
	var p entity.Profile
	var role string
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&p.UID, &p.Email, &p.PasswordHash, &p.FullName, &p.ArtistName,
		&p.Bio, &p.PreferredStyle, &p.PreferredRhythm, &role,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p.Role = entity.Role(role)
	return &p, nil
}

// Update persiste os campos de autosserviço. O papel não passa por aqui.
func (r *ProfileRepo) Update(ctx context.Context, p *entity.Profile) error {
	query := `
		UPDATE users
		SET full_name = $2, artist_name = $3, bio = $4, preferred_style = $5, preferred_rhythm = $6, updated_at = $7
		WHERE uid = $1`
	_, err := r.pool.Exec(ctx, query,
		p.UID, p.FullName, p.ArtistName, p.Bio, p.PreferredStyle, p.PreferredRhythm, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// UpdateRole muda apenas o papel do perfil.
func (r *ProfileRepo) UpdateRole(ctx context.Context, uid string, role entity.Role) error {
	_, err := r.pool.Exec(ctx, `UPDATE users SET role = $2, updated_at = now() WHERE uid = $1`, uid, string(role))
	if err != nil {
		return fmt.Errorf("update profile role: %w", err)
	}
	return nil
}

// isUniqueViolation detecta violação de constraint UNIQUE (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
