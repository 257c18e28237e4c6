package impl

import (
	"context"

	"manna/internal/domain/repository"
	"manna/internal/usecase"
)

type adminService struct {
	userRepo       repository.UserRepository
	meditationRepo repository.MeditationRepository
	mannaRepo      repository.MannaRepository
}

// NewAdminService creates the usecase behind the admin dashboard.
func NewAdminService(
	userRepo repository.UserRepository,
	meditationRepo repository.MeditationRepository,
	mannaRepo repository.MannaRepository,
) usecase.AdminUsecase {
	return &adminService{
		userRepo:       userRepo,
		meditationRepo: meditationRepo,
		mannaRepo:      mannaRepo,
	}
}

func (srv *adminService) GetStats(ctx context.Context) (*usecase.DashboardStats, error) {
	users, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, storeError(err, nil, nil, "count users")
	}
	meditations, err := srv.meditationRepo.Count(ctx)
	if err != nil {
		return nil, storeError(err, nil, nil, "count meditations")
	}
	manna, err := srv.mannaRepo.Count(ctx)
	if err != nil {
		return nil, storeError(err, nil, nil, "count manna")
	}

	return &usecase.DashboardStats{
		Users:       users,
		Meditations: meditations,
		Manna:       manna,
	}, nil
}
