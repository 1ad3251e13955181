package farm

import (
	"context"

	"github.com/agrovin/farmops-backend-go/internal/domain/farm"
)

type FarmService struct {
	farmRepo farm.FarmRepository
}

func NewFarmService(farmRepo farm.FarmRepository) *FarmService {
	return &FarmService{farmRepo: farmRepo}
}

func (s *FarmService) CreateFarm(ctx context.Context, req farm.CreateFarmRequest) (farm.FarmResponse, error) {
	if err := req.Validate(); err != nil {
		return farm.FarmResponse{}, err
	}

	created, err := s.farmRepo.Create(ctx, farm.Farm{
		Name:     req.Name,
		Location: req.Location,
		IsActive: true,
	})
	if err != nil {
		return farm.FarmResponse{}, err
	}

	return mapFarmResponse(created), nil
}

func (s *FarmService) GetFarm(ctx context.Context, id string) (farm.FarmResponse, error) {
	f, err := s.farmRepo.GetByID(ctx, id)
	if err != nil {
		return farm.FarmResponse{}, err
	}
	return mapFarmResponse(f), nil
}

func (s *FarmService) ListFarms(ctx context.Context, activeOnly bool) ([]farm.FarmResponse, error) {
	farms, err := s.farmRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]farm.FarmResponse, 0, len(farms))
	for _, f := range farms {
		result = append(result, mapFarmResponse(f))
	}
	return result, nil
}

func (s *FarmService) UpdateFarm(ctx context.Context, req farm.UpdateFarmRequest) (farm.FarmResponse, error) {
	if err := s.farmRepo.Update(ctx, req); err != nil {
		return farm.FarmResponse{}, err
	}
	return s.GetFarm(ctx, req.ID)
}

func mapFarmResponse(f farm.Farm) farm.FarmResponse {
	return farm.FarmResponse{
		ID:       f.ID,
		Name:     f.Name,
		Location: f.Location,
		IsActive: f.IsActive,
	}
}
