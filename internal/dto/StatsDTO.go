package dto

import "time"

type StatsDTO struct {
	TotalBoxes    int64     `json:"total_boxes"`
	TotalItems    int64     `json:"total_items"`
	TotalQuantity int64     `json:"total_quantity"`
	Timestamp     time.Time `json:"timestamp"`
}
