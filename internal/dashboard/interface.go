package dashboard

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	GetDashboard(ctx context.Context, input GetDashboardInput) (Payload, error)
}
