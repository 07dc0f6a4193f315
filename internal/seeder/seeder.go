package seeder

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/orderdesk/internal/database"
	"github.com/Additional-Code/orderdesk/internal/entity"
)

// Module provides the seeder to Fx.
var Module = fx.Provide(New)

// Seeder performs database seeding for local/dev setups.
type Seeder struct {
	db     *bun.DB
	logger *zap.Logger
}

// New constructs a Seeder backed by the primary database connection.
func New(conns *database.Connections, logger *zap.Logger) *Seeder {
	return &Seeder{db: conns.Writer, logger: logger}
}

// Orders seeds example orders when the table is empty. Orders carry no
// natural unique key, so seeding an already populated table is a no-op.
func (s *Seeder) Orders(ctx context.Context) error {
	existing, err := s.db.NewSelect().Model((*entity.Order)(nil)).Count(ctx)
	if err != nil {
		return err
	}
	if existing > 0 {
		if s.logger != nil {
			s.logger.Info("orders already present; skipping seed", zap.Int("count", existing))
		}
		return nil
	}

	now := time.Now().UTC()
	samples := []entity.Order{
		{CustomerName: "Alice Jensen", Product: "Mouse", Quantity: 1, Amount: 50.00, Status: entity.StatusPending, OrderDate: "2026-01-01", CreatedAt: now},
		{CustomerName: "Bob Okafor", Product: "Keyboard", Quantity: 2, Amount: 129.90, Status: entity.StatusProcessing, OrderDate: "2026-01-02", CreatedAt: now},
		{CustomerName: "Carla Mendes", Product: "Monitor", Quantity: 1, Amount: 349.99, Status: entity.StatusCompleted, OrderDate: "2026-01-02", CreatedAt: now},
	}

	if _, err := s.db.NewInsert().Model(&samples).Exec(ctx); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("seeded orders", zap.Int("count", len(samples)))
	}
	return nil
}
