package usecase

import (
	"context"

	"github.com/jhoicas/prepperstore-api/internal/application/dto"
	"github.com/jhoicas/prepperstore-api/internal/domain/repository"
)

// LocationUseCase lectura de ubicaciones (datos de referencia).
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// List devuelve todas las ubicaciones ordenadas por id.
func (uc *LocationUseCase) List(ctx context.Context) (*dto.LocationListResponse, error) {
	locs, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.LocationListResponse{Locations: make([]dto.LocationResponse, 0, len(locs))}
	for _, l := range locs {
		out.Locations = append(out.Locations, dto.LocationResponse{ID: l.ID, Name: l.Name})
	}
	return out, nil
}
