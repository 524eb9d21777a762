package models

import "time"

// Order представляет заказ клиента
type Order struct {
	ID           int64     `json:"id"`           // назначается БД при первой вставке
	CustomerName string    `json:"customerName"` // имя клиента, непустое
	Amount       float64   `json:"amount"`       // сумма заказа, минимум 0.1
	CreatedAt    time.Time `json:"createdAt"`    // проставляется сервисом один раз при создании
}
