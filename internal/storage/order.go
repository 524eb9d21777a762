package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/linemk/order-service/internal/domain/models"
)

// OrderStorage описывает методы для работы с заказами.
type OrderStorage interface {
	// SaveOrder вставляет новый заказ и возвращает его с назначенным БД идентификатором.
	SaveOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetAllOrders возвращает все заказы в порядке вставки.
	GetAllOrders(ctx context.Context) ([]*models.Order, error)
}

// orderRepository — конкретная реализация OrderStorage.
type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт новый репозиторий заказов.
func NewOrderRepository(db *sql.DB) OrderStorage {
	return &orderRepository{db: db}
}

// SaveOrder вставляет новый заказ в таблицу orders.
// Идентификатор назначает БД, поэтому используем RETURNING id.
func (r *orderRepository) SaveOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO orders (customer_name, amount, created_at) VALUES ($1, $2, $3) RETURNING id",
		order.CustomerName, order.Amount, order.CreatedAt,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	order.ID = id
	return order, nil
}

// GetAllOrders возвращает все заказы. ORDER BY id даёт стабильный порядок вставки.
func (r *orderRepository) GetAllOrders(ctx context.Context) ([]*models.Order, error) {
	query := `
		SELECT id, customer_name, amount, created_at
		FROM orders
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.CustomerName, &order.Amount, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
