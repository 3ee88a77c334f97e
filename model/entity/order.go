package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Order statuses an admin can set. New orders always start as confirmed.
const (
	OrderStatusConfirmed  = "confirmed"
	OrderStatusDispatched = "dispatched"
	OrderStatusCompleted  = "completed"
)

type Order struct {
	OrderID   uint           `gorm:"column:order_id;primaryKey;autoIncrement"`
	UserID    uint           `gorm:"column:user_id;not null;index"`
	Items     datatypes.JSON `gorm:"column:items"`
	Total     float64        `gorm:"column:total;not null"`
	Status    string         `gorm:"column:status;type:varchar(16);not null;default:confirmed"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (Order) TableName() string {
	return "orders"
}

// ValidOrderStatus reports whether s is an allowed admin status value.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusConfirmed, OrderStatusDispatched, OrderStatusCompleted:
		return true
	}
	return false
}
