package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/linemk/order-service/internal/domain/models"
	"github.com/linemk/order-service/internal/service"
)

// CreateOrderRequest представляет входной JSON для создания заказа с тегами валидации.
// Amount — указатель, чтобы отличать отсутствующее поле от нулевого значения.
type CreateOrderRequest struct {
	CustomerName string   `json:"customerName" validate:"required"`
	Amount       *float64 `json:"amount" validate:"required,gte=0.1"`
}

var validate = validator.New()

// validationErrors переводит ошибки validator в карту "поле — сообщение",
// по одной записи на каждое непрошедшее поле.
func validationErrors(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		switch e.Field() {
		case "CustomerName":
			out["customerName"] = "Customer name is required"
		case "Amount":
			if e.Tag() == "required" {
				out["amount"] = "Amount is required"
			} else {
				out["amount"] = "Amount must be at least 0.1"
			}
		}
	}
	return out
}

// CreateOrderHandler обрабатывает запрос POST /api/orders.
// При ошибке валидации сервис не вызывается, клиенту возвращается 400 с картой ошибок по полям.
func CreateOrderHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CreateOrderHandler"
		logger := log.With(slog.String("op", op))

		var req CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		// Пустое имя из одних пробелов тоже считается незаполненным
		req.CustomerName = strings.TrimSpace(req.CustomerName)

		// Валидация структуры запроса с использованием validator
		if err := validate.Struct(req); err != nil {
			var vErrs validator.ValidationErrors
			if !errors.As(err, &vErrs) {
				logger.Error("invalid request: validation error", slog.Any("error", err))
				http.Error(w, "validation error", http.StatusBadRequest)
				return
			}
			// Ошибка валидации — это ошибка входных данных клиента, а не системы
			logger.Warn("invalid request: validation failed", slog.Any("error", err))
			writeJSON(w, http.StatusBadRequest, validationErrors(vErrs))
			return
		}

		// Вызов бизнес-логики для создания заказа
		order, err := orderService.CreateOrder(r.Context(), req.CustomerName, *req.Amount)
		if err != nil {
			logger.Error("failed to create order", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, order)
	}
}

// ListOrdersHandler обрабатывает запрос GET /api/orders.
func ListOrdersHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ListOrdersHandler"
		logger := log.With(slog.String("op", op))

		orders, err := orderService.GetAllOrders(r.Context())
		if err != nil {
			logger.Error("failed to get orders", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		// Пустой список сериализуем как [], а не null
		if orders == nil {
			orders = []*models.Order{}
		}

		writeJSON(w, http.StatusOK, orders)
	}
}

// writeJSON отправляет ответ клиенту в формате JSON.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
