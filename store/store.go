package store

import (
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Module provides the sample-data repositories to an fx container.
var Module = fx.Options(
	fx.Provide(
		NewCharacterRepository,
		NewReviewRepository,
	),
)

// Services holds the repositories shared by both engines.
type Services struct {
	fx.In

	Characters *CharacterRepository
	Reviews    *ReviewRepository
}

// NewServices builds the service container and returns the services it provides. The container is
// built once; the returned repositories are read-only and safe for concurrent use.
func NewServices() (*Services, error) {
	var services Services
	app := fx.New(
		Module,
		fx.Invoke(func(s Services) {
			services = s
		}),
		fx.NopLogger,
	)
	if err := app.Err(); err != nil {
		return nil, errors.Wrap(err, "error building service container")
	}
	return &services, nil
}
