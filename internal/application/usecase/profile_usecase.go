package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/gracetone/gracetone-connect/internal/application/auth"
	"github.com/gracetone/gracetone-connect/internal/application/dto"
	"github.com/gracetone/gracetone-connect/internal/domain"
	"github.com/gracetone/gracetone-connect/internal/domain/entity"
	"github.com/gracetone/gracetone-connect/internal/domain/repository"
)

// ProfileUseCase leitura e atualização do próprio perfil, e troca de papel
// por admin. Campos de autosserviço só pelo dono; o papel só por admin.
type ProfileUseCase struct {
	profiles repository.ProfileRepository
	reporter *ErrorReporter
}

// NewProfileUseCase constrói o caso de uso de perfil.
func NewProfileUseCase(profiles repository.ProfileRepository, reporter *ErrorReporter) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles, reporter: reporter}
}

// Get devolve o perfil do uid.
func (uc *ProfileUseCase) Get(ctx context.Context, uid string) (*dto.ProfileResponse, error) {
	profile, err := uc.profiles.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return auth.ToProfileResponse(profile), nil
}

// Update grava os campos de autosserviço do próprio perfil.
// Falhas inesperadas neste caminho vão para error_reports (best-effort).
func (uc *ProfileUseCase) Update(ctx context.Context, uid string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, map[string]string, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, fields, nil
	}
	profile, err := uc.profiles.GetByUID(ctx, uid)
	if err != nil {
		uc.reporter.Report(ctx, "profile/update", err.Error(), "", uid, "")
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, domain.ErrProfileNotFound
	}
	profile.FullName = strings.TrimSpace(in.FullName)
	profile.ArtistName = strings.TrimSpace(in.ArtistName)
	profile.Bio = strings.TrimSpace(in.Bio)
	profile.PreferredStyle = strings.TrimSpace(in.PreferredStyle)
	profile.PreferredRhythm = strings.TrimSpace(in.PreferredRhythm)
	profile.UpdatedAt = time.Now()
	if err := uc.profiles.Update(ctx, profile); err != nil {
		uc.reporter.Report(ctx, "profile/update", err.Error(), "", uid, profile.Email)
		return nil, nil, err
	}
	return auth.ToProfileResponse(profile), nil, nil
}

// UpdateRole troca o papel de um perfil. A rota que chama isto é restrita a admin.
func (uc *ProfileUseCase) UpdateRole(ctx context.Context, uid, role string) error {
	parsed, ok := entity.ParseRole(role)
	if !ok {
		return domain.ErrInvalidInput
	}
	profile, err := uc.profiles.GetByUID(ctx, uid)
	if err != nil {
		return err
	}
	if profile == nil {
		return domain.ErrProfileNotFound
	}
	return uc.profiles.UpdateRole(ctx, uid, parsed)
}
