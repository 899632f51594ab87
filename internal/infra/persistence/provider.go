// Package persistence selects the store backend for the repository gateways.
package persistence

import (
	"context"
	"log/slog"

	"quickbite/config"
	"quickbite/internal/domain/repository"
	fsrepo "quickbite/internal/infra/persistence/firestore"
	"quickbite/internal/infra/persistence/memory"

	"go.uber.org/fx"
)

// Params holds dependencies for the repository set, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Repositories bundles every store gateway so one provider decides the
// backend for all of them.
type Repositories struct {
	fx.Out

	Order     repository.OrderRepository
	Catalog   repository.CatalogRepository
	User      repository.UserRepository
	Challenge repository.ChallengeRepository
}

// NewRepositories creates the repository set based on configuration. Without
// a Firestore section the in-process store is used.
func NewRepositories(params Params) (Repositories, error) {
	if params.Config.Firestore == nil {
		params.Logger.Info("Firestore not configured, using in-memory store")

		return Repositories{
			Order:     memory.NewOrderRepository(),
			Catalog:   memory.NewCatalogRepository(),
			User:      memory.NewUserRepository(),
			Challenge: memory.NewChallengeRepository(),
		}, nil
	}

	params.Logger.Info("Using Firestore store",
		slog.String("project_id", params.Config.Firestore.ProjectID),
	)

	client, err := fsrepo.NewClient(params.Ctx, params.Config)
	if err != nil {
		return Repositories{}, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return Repositories{
		Order:     fsrepo.NewOrderRepository(client),
		Catalog:   fsrepo.NewCatalogRepository(client),
		User:      fsrepo.NewUserRepository(client),
		Challenge: fsrepo.NewChallengeRepository(client),
	}, nil
}
