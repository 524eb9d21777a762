package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/linemk/order-service/internal/domain/models"
	"github.com/linemk/order-service/internal/storage"
)

// OrderService определяет интерфейс бизнес-логики по заказам.
type OrderService interface {
	CreateOrder(ctx context.Context, customerName string, amount float64) (*models.Order, error)
	GetAllOrders(ctx context.Context) ([]*models.Order, error)
}

// orderService — конкретная реализация OrderService.
type orderService struct {
	log       *slog.Logger
	orderRepo storage.OrderStorage
}

func NewOrderService(log *slog.Logger, orderRepo storage.OrderStorage) OrderService {
	return &orderService{
		log:       log,
		orderRepo: orderRepo,
	}
}

// CreateOrder собирает заказ из проверенного запроса, проставляет время создания
// и сохраняет его через репозиторий. Ошибки хранилища пробрасываются без перевода.
func (s *orderService) CreateOrder(ctx context.Context, customerName string, amount float64) (*models.Order, error) {
	const op = "service.OrderService.CreateOrder"
	logger := s.log.With(slog.String("op", op), slog.String("customerName", customerName))
	logger.Info("creating order")

	order := &models.Order{
		CustomerName: customerName,
		Amount:       amount,
		CreatedAt:    time.Now().UTC(),
	}

	saved, err := s.orderRepo.SaveOrder(ctx, order)
	if err != nil {
		logger.Error("failed to save order", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to save order: %w", op, err)
	}

	logger.Info("order created", slog.Int64("orderID", saved.ID))
	return saved, nil
}

// GetAllOrders возвращает все сохранённые заказы в порядке, который отдаёт хранилище.
func (s *orderService) GetAllOrders(ctx context.Context) ([]*models.Order, error) {
	const op = "service.OrderService.GetAllOrders"

	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		s.log.Error("failed to get orders", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to get orders: %w", op, err)
	}
	return orders, nil
}
