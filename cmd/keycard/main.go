package main

import (
	"context"
	"log/slog"
	"os"

	"keycard/config"
	"keycard/internal/delivery"
	"keycard/internal/delivery/api"
	"keycard/internal/delivery/api/middleware"
	"keycard/internal/delivery/api/router/handler"
	"keycard/internal/domain/repository"
	"keycard/internal/infra/auth"
	logs "keycard/internal/infra/log"
	"keycard/internal/infra/metrics"
	"keycard/internal/infra/persistence/memory"
	"keycard/internal/infra/persistence/postgres"
	"keycard/internal/infra/session"
	"keycard/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		session.NewCookieStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newUserRepository,
		),
	)
}

type userRepositoryParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// newUserRepository picks the user store named by storage.driver.
func newUserRepository(params userRepositoryParams) (repository.UserRepository, error) {
	if params.Config.Storage.Driver == config.StorageDriverMemory {
		params.Logger.Warn("Using the in-memory user store, users are lost on restart")

		return memory.NewUserRepository(), nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open user store")
	}

	return postgres.NewUserRepository(db), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewScryptHasher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewCurrentUserMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
