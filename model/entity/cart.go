package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Cart is one row per user; the item list is replaced wholesale on POST /cart.
type Cart struct {
	CartID    uint           `gorm:"column:cart_id;primaryKey;autoIncrement"`
	UserID    uint           `gorm:"column:user_id;not null;uniqueIndex"`
	Items     datatypes.JSON `gorm:"column:items"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Cart) TableName() string {
	return "carts"
}

// CartItem is one line in the cart's JSON item list. Line identity is the
// catalog item id plus the chosen size.
type CartItem struct {
	ProductID uint    `json:"productId" mapstructure:"productId"`
	Name      string  `json:"name" mapstructure:"name"`
	Price     float64 `json:"price" mapstructure:"price"`
	Image     string  `json:"image,omitempty" mapstructure:"image"`
	Size      string  `json:"size,omitempty" mapstructure:"size"`
	Quantity  int     `json:"quantity" mapstructure:"quantity"`
}
