package order

import (
	"go.uber.org/fx"

	repo "github.com/Additional-Code/orderdesk/internal/repository/order"
)

// Module provides the order service to Fx, binding the bun repository to
// the service's storage contract.
var Module = fx.Options(
	fx.Provide(func(r *repo.Repository) Repository { return r }),
	fx.Provide(NewService),
)
