package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordersdomain "github.com/storegate/backoffice/internal/domains/orders/domain"
	ordersports "github.com/storegate/backoffice/internal/domains/orders/ports"
)

const tracerName = "github.com/storegate/backoffice/internal/domains/orders/adapters/observability/service"

// Service decorates the order workflow with tracing, logging, and metrics.
type Service struct {
	inner   ordersports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order workflow service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) PlaceOrder(ctx context.Context, memberID, itemID, count int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.PlaceOrder",
		trace.WithAttributes(
			attribute.Int64("order.member_id", memberID),
			attribute.Int64("order.item_id", itemID),
			attribute.Int64("order.count", count),
		))
	defer span.End()

	s.logInfo(ctx, "placing order",
		slog.Int64("member.id", memberID), slog.Int64("item.id", itemID), slog.Int64("count", count))
	orderID, err := s.inner.PlaceOrder(ctx, memberID, itemID, count)
	if err != nil {
		return 0, s.handleError(ctx, span, err, "failed to place order",
			slog.Int64("member.id", memberID), slog.Int64("item.id", itemID))
	}
	span.SetAttributes(attribute.Int64("order.id", orderID))
	s.metrics.recordPlaced(ctx)
	s.logInfo(ctx, "order placed", slog.Int64("order.id", orderID))
	return orderID, nil
}

func (s *Service) CancelOrder(ctx context.Context, orderID int64) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.CancelOrder",
		trace.WithAttributes(attribute.Int64("order.id", orderID)))
	defer span.End()

	s.logInfo(ctx, "canceling order", slog.Int64("order.id", orderID))
	if err := s.inner.CancelOrder(ctx, orderID); err != nil {
		return s.handleError(ctx, span, err, "failed to cancel order", slog.Int64("order.id", orderID))
	}
	s.metrics.recordCanceled(ctx)
	s.logInfo(ctx, "order canceled", slog.Int64("order.id", orderID))
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetByID",
		trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	order, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", id))
	}
	return order, nil
}

func (s *Service) FindOrders(ctx context.Context, search ordersdomain.OrderSearch) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.FindOrders",
		trace.WithAttributes(
			attribute.String("search.member_name", search.MemberName),
			attribute.String("search.status", string(search.Status)),
		))
	defer span.End()

	orders, err := s.inner.FindOrders(ctx, search)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to search orders")
	}
	span.SetAttributes(attribute.Int("search.result_count", len(orders)))
	return orders, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersPlaced   metric.Int64Counter
	ordersCanceled metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersPlaced, _ := m.Int64Counter("orders.service.orders_placed", metric.WithDescription("Number of orders placed"))
	ordersCanceled, _ := m.Int64Counter("orders.service.orders_canceled", metric.WithDescription("Number of orders canceled"))
	return serviceMetrics{ordersPlaced: ordersPlaced, ordersCanceled: ordersCanceled}
}

func (m serviceMetrics) recordPlaced(ctx context.Context) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordCanceled(ctx context.Context) {
	if m.ordersCanceled != nil {
		m.ordersCanceled.Add(ctx, 1)
	}
}

var _ ordersports.Service = (*Service)(nil)
