package order

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	entity "carolinebride.GO/model/entity"
	cartRepo "carolinebride.GO/model/repository/cart"
	orderRepo "carolinebride.GO/model/repository/order"
)

// PlaceResult reports a placed order.
type PlaceResult struct {
	Order *entity.Order
}

// Place creates a confirmed order for the user and clears their cart.
// Items and total come from the client, matching the reference checkout flow;
// the total is recomputed server-side and must agree within a cent.
func Place(db *gorm.DB, userID uint, items []entity.CartItem, total float64) (*PlaceResult, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("items are required")
	}
	computed := cartRepo.Total(items)
	if diff := computed - total; diff > 0.01 || diff < -0.01 {
		return nil, fmt.Errorf("total %.2f does not match items total %.2f", total, computed)
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	o := &entity.Order{
		UserID: userID,
		Items:  datatypes.JSON(data),
		Total:  computed,
		Status: entity.OrderStatusConfirmed,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := orderRepo.NewOrderRepository(tx).Create(o); err != nil {
			return err
		}
		// Clear cart after order
		return cartRepo.NewCartRepository(tx).Clear(userID)
	})
	if err != nil {
		return nil, err
	}
	return &PlaceResult{Order: o}, nil
}
