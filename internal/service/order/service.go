package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/orderdesk/internal/cache"
	"github.com/Additional-Code/orderdesk/internal/config"
	"github.com/Additional-Code/orderdesk/internal/dto"
	"github.com/Additional-Code/orderdesk/internal/entity"
	"github.com/Additional-Code/orderdesk/internal/messaging"
	repo "github.com/Additional-Code/orderdesk/internal/repository/order"
	"github.com/Additional-Code/orderdesk/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Additional-Code/orderdesk/service/order")

// Repository is the storage contract the service depends on. The bun-backed
// repository satisfies it; tests substitute a stub.
type Repository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	List(ctx context.Context, f repo.Filter) ([]entity.Order, int, error)
	Update(ctx context.Context, id int64, assignments []repo.Assignment) error
	Delete(ctx context.Context, id int64) error
}

// Service encapsulates business logic around orders.
type Service struct {
	repo      Repository
	cache     cache.Store
	cacheTTL  time.Duration
	logger    *zap.Logger
	publisher messaging.Client
	messaging messagingConfig
}

// messagingConfig contains messaging specific knobs we care about.
type messagingConfig struct {
	enabled bool
	topic   string
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository Repository
	Cache      cache.Store
	Config     config.Config
	Logger     *zap.Logger
	Publisher  messaging.Client
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:      p.Repository,
		cache:     p.Cache,
		cacheTTL:  p.Config.Cache.DefaultTTL,
		logger:    p.Logger,
		publisher: p.Publisher,
		messaging: messagingConfig{
			enabled: p.Config.Messaging.Enabled,
			topic:   p.Config.Messaging.Kafka.Topic,
		},
	}
}

// Get retrieves an order by id, consulting cache when available.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Order, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Get", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	if order, err := s.getFromCache(ctx, id); err == nil {
		return order, nil
	} else if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		if s.logger != nil {
			s.logger.Warn("orders cache read failed", zap.Int64("id", id), zap.Error(err))
		}
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errorbank.NotFound("order not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to load order", errorbank.WithCause(err))
	}

	if err := s.storeInCache(ctx, order); err != nil {
		if s.logger != nil {
			s.logger.Warn("orders cache write failed", zap.Int64("id", id), zap.Error(err))
		}
	}

	return order, nil
}

// List returns one page of matching orders together with pagination
// metadata derived from the unbounded match count.
func (s *Service) List(ctx context.Context, f repo.Filter) ([]entity.Order, dto.Pagination, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.List", trace.WithAttributes(
		attribute.Int("page", f.Page),
		attribute.Int("limit", f.Limit),
	))
	defer span.End()

	orders, total, err := s.repo.List(ctx, f)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, dto.Pagination{}, errorbank.Internal("failed to list orders", errorbank.WithCause(err))
	}

	return orders, dto.NewPagination(f.Page, f.Limit, total), nil
}

// Create creates a new order in the database and refreshes cache state.
// CreatedAt is assigned here; the database assigns the id.
func (s *Service) Create(ctx context.Context, order *entity.Order) error {
	if order == nil {
		return errorbank.BadRequest("order payload is required")
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	ctx, span := serviceTracer.Start(ctx, "OrderService.Create", trace.WithAttributes(attribute.String("order.status", order.Status)))
	defer span.End()

	if err := s.repo.Create(ctx, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to create order", errorbank.WithCause(err))
	}

	if err := s.storeInCache(ctx, order); err != nil {
		if s.logger != nil {
			s.logger.Warn("orders cache write failed", zap.Int64("id", order.ID), zap.Error(err))
		}
	}

	s.publishEvent(ctx, ActionCreated, order.ID, order.Status)
	return nil
}

// Update overwrites the supplied fields of one order. Concurrent updates
// race at the storage layer with last-writer-wins semantics.
func (s *Service) Update(ctx context.Context, id int64, req dto.UpdateOrderRequest) error {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Update", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	if err := s.repo.Update(ctx, id, assignments(req)); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("order not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to update order", errorbank.WithCause(err))
	}

	s.dropFromCache(ctx, id)
	s.publishEvent(ctx, ActionUpdated, id, deref(req.Status))
	return nil
}

// Delete removes one order. A repeated delete reports not found rather
// than an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Delete", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("order not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to delete order", errorbank.WithCause(err))
	}

	s.dropFromCache(ctx, id)
	s.publishEvent(ctx, ActionDeleted, id, "")
	return nil
}

// assignments translates the declared optional fields of an update request
// into column assignments, in declaration order.
func assignments(req dto.UpdateOrderRequest) []repo.Assignment {
	var out []repo.Assignment
	if req.CustomerName != nil {
		out = append(out, repo.Assignment{Column: "customer_name", Value: *req.CustomerName})
	}
	if req.Product != nil {
		out = append(out, repo.Assignment{Column: "product", Value: *req.Product})
	}
	if req.Quantity != nil {
		out = append(out, repo.Assignment{Column: "quantity", Value: *req.Quantity})
	}
	if req.Amount != nil {
		out = append(out, repo.Assignment{Column: "amount", Value: *req.Amount})
	}
	if req.Status != nil {
		out = append(out, repo.Assignment{Column: "status", Value: *req.Status})
	}
	if req.OrderDate != nil {
		out = append(out, repo.Assignment{Column: "order_date", Value: *req.OrderDate})
	}
	return out
}

func (s *Service) publishEvent(ctx context.Context, action string, id int64, status string) {
	if !s.messaging.enabled || s.publisher == nil {
		return
	}
	event := Event{
		Action:     action,
		ID:         id,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("marshal order event", zap.Error(err))
		}
		return
	}
	if err := s.publisher.Publish(ctx, []byte(fmt.Sprintf("order-%d", id)), payload); err != nil {
		if s.logger != nil {
			s.logger.Error("publish order event", zap.String("action", action), zap.Error(err))
		}
	}
}

func (s *Service) cacheKey(id int64) string {
	return fmt.Sprintf("orders:%d", id)
}

func (s *Service) getFromCache(ctx context.Context, id int64) (*entity.Order, error) {
	if s.cache == nil {
		return nil, cache.ErrCacheMiss
	}
	bytes, err := s.cache.Get(ctx, s.cacheKey(id))
	if err != nil {
		return nil, err
	}
	var order entity.Order
	if err := json.Unmarshal(bytes, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Service) storeInCache(ctx context.Context, order *entity.Order) error {
	if s.cache == nil || order == nil {
		return nil
	}
	bytes, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, s.cacheKey(order.ID), bytes, s.cacheTTL)
}

func (s *Service) dropFromCache(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, s.cacheKey(id)); err != nil && s.logger != nil {
		s.logger.Warn("orders cache delete failed", zap.Int64("id", id), zap.Error(err))
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Event lifecycle actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event is emitted on every order mutation.
type Event struct {
	Action     string    `json:"action"`
	ID         int64     `json:"id"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
