package service_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/linemk/order-service/internal/domain/models"
	"github.com/linemk/order-service/internal/service"
	"github.com/linemk/order-service/internal/storage"
	"github.com/stretchr/testify/assert"
)

// fakeOrderRepo — фиктивная реализация OrderStorage, хранит заказы в памяти.
type fakeOrderRepo struct {
	orders  []*models.Order
	saveErr error
	listErr error
}

var _ storage.OrderStorage = (*fakeOrderRepo)(nil)

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{}
}

func (f *fakeOrderRepo) SaveOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	// Идентификатор назначается хранилищем, как это делает БД.
	order.ID = int64(len(f.orders) + 1)
	f.orders = append(f.orders, order)
	return order, nil
}

func (f *fakeOrderRepo) GetAllOrders(ctx context.Context) ([]*models.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.orders, nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestCreateOrder_Success(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := service.NewOrderService(newTestLogger(), repo)
	ctx := context.Background()

	before := time.Now().UTC()
	order, err := svc.CreateOrder(ctx, "John", 123.45)
	after := time.Now().UTC()

	assert.NoError(t, err)
	assert.NotNil(t, order)
	// Поля заказа совпадают с запросом, идентификатор назначен хранилищем.
	assert.Equal(t, "John", order.CustomerName)
	assert.Equal(t, 123.45, order.Amount)
	assert.Equal(t, int64(1), order.ID, "Order should get the id assigned by the storage")
	// Время создания проставлено сервисом и лежит в ожидаемом интервале.
	assert.False(t, order.CreatedAt.IsZero(), "CreatedAt should be set by the service")
	assert.False(t, order.CreatedAt.Before(before))
	assert.False(t, order.CreatedAt.After(after))
}

func TestCreateOrder_StorageError(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.saveErr = errors.New("storage error")
	svc := service.NewOrderService(newTestLogger(), repo)

	// Ошибка хранилища пробрасывается вызывающей стороне без перевода.
	order, err := svc.CreateOrder(context.Background(), "John", 50)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, repo.saveErr))
	assert.Nil(t, order)
}

func TestGetAllOrders_AfterCreate(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := service.NewOrderService(newTestLogger(), repo)
	ctx := context.Background()

	created, err := svc.CreateOrder(ctx, "John", 123.45)
	assert.NoError(t, err)

	// Сразу после одного успешного создания список содержит ровно этот заказ.
	orders, err := svc.GetAllOrders(ctx)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, created, orders[0])
}

func TestGetAllOrders_Idempotent(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := service.NewOrderService(newTestLogger(), repo)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, "John", 123.45)
	assert.NoError(t, err)
	_, err = svc.CreateOrder(ctx, "Jane", 0.1)
	assert.NoError(t, err)

	// Два вызова подряд без записей между ними возвращают одинаковый список.
	first, err := svc.GetAllOrders(ctx)
	assert.NoError(t, err)
	second, err := svc.GetAllOrders(ctx)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetAllOrders_Empty(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := service.NewOrderService(newTestLogger(), repo)

	orders, err := svc.GetAllOrders(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGetAllOrders_StorageError(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.listErr = errors.New("db error")
	svc := service.NewOrderService(newTestLogger(), repo)

	orders, err := svc.GetAllOrders(context.Background())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, repo.listErr))
	assert.Nil(t, orders)
}
