package usecase

import "context"

// DashboardStats counts the stored documents shown on the admin dashboard
type DashboardStats struct {
	Users       int64
	Meditations int64
	Manna       int64
}

// AdminUsecase defines admin dashboard queries
type AdminUsecase interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}
