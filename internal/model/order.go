package model

import "time"

const OrderStatusPending = "pending"

// LineSnapshot captures a product's name and price at order time. Later
// catalog edits do not touch historical orders.
type LineSnapshot struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

type Order struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	Items           []LineSnapshot `json:"items"`
	TotalAmount     float64        `json:"total_amount"`
	Status          string         `json:"status"`
	DeliveryAddress string         `json:"delivery_address"`
	OrderDate       time.Time      `json:"order_date"`
	DeliveryDate    *time.Time     `json:"delivery_date"`
}
