package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/baspana/backend/internal/app"
	"github.com/baspana/backend/internal/config"
	"github.com/baspana/backend/internal/domain/repository"
	"github.com/baspana/backend/internal/storage/postgres"
	"github.com/baspana/backend/internal/test"
	"github.com/baspana/backend/internal/usecase"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:         ":0",
		DatabaseURI:        "postgres://stub",
		TokenSecret:        "secret",
		ExpirationInterval: time.Millisecond,
		ShutdownTimeout:    time.Millisecond,
		AllowedOrigins:     "*",
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var facade *app.BaspanaFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(test.NewUserRepositoryStub())),
			fx.Replace(repository.OrderRepository(&test.OrderRepositoryStub{})),
			fx.Replace(repository.WalletRepository(&test.WalletRepositoryStub{})),
			fx.Replace(repository.TransactionRepository(&test.TransactionRepositoryStub{})),
			fx.Replace(repository.ComplexRepository(&test.ComplexRepositoryStub{})),
			fx.Replace(repository.BuildingRepository(&test.BuildingRepositoryStub{})),
			fx.Replace(repository.ApartmentRepository(&test.ApartmentRepositoryStub{})),
			fx.Replace(repository.CommercialUnitRepository(&test.CommercialRepositoryStub{})),
			fx.Replace(repository.ReviewRepository(&test.ReviewRepositoryStub{})),
			fx.Replace(repository.FavoriteRepository(&test.FavoriteRepositoryStub{})),
			fx.Replace(repository.PromotionRepository(&test.PromotionRepositoryStub{})),
			fx.Replace(repository.ImageRepository(&test.ImageRepositoryStub{})),
			fx.Replace(usecase.ImageHost(&test.ImageHostStub{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected baspana facade instance")
	}
}
