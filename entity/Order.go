package entity

import "time"

// Order is immutable after placement except for Status.
type Order struct {
	ID           string      `json:"id"`
	TableNumber  string      `json:"tableNumber"`
	CustomerName string      `json:"customerName,omitempty"`
	PhoneNumber  string      `json:"phoneNumber,omitempty"`
	Items        []CartItem  `json:"items"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	Timestamp    time.Time   `json:"timestamp"`
}
