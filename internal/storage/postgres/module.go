package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/baspana/backend/internal/config"
	"github.com/baspana/backend/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.WalletRepository { return s.Wallets() },
		func(s *Storage) repository.TransactionRepository { return s.Transactions() },
		func(s *Storage) repository.ComplexRepository { return s.Complexes() },
		func(s *Storage) repository.BuildingRepository { return s.Buildings() },
		func(s *Storage) repository.ApartmentRepository { return s.Apartments() },
		func(s *Storage) repository.CommercialUnitRepository { return s.CommercialUnits() },
		func(s *Storage) repository.ReviewRepository { return s.Reviews() },
		func(s *Storage) repository.FavoriteRepository { return s.Favorites() },
		func(s *Storage) repository.PromotionRepository { return s.Promotions() },
		func(s *Storage) repository.ImageRepository { return s.Images() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
