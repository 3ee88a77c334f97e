package cart

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	entity "carolinebride.GO/model/entity"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// ItemsForUser returns the user's cart lines; a missing cart is an empty list.
func (r *CartRepository) ItemsForUser(userID uint) ([]entity.CartItem, error) {
	var c entity.Cart
	err := r.db.First(&c, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []entity.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	items := []entity.CartItem{}
	if len(c.Items) > 0 {
		if err := json.Unmarshal(c.Items, &items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// ReplaceItems upserts the user's cart with a full new item list.
func (r *CartRepository) ReplaceItems(userID uint, items []entity.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	c := entity.Cart{UserID: userID, Items: datatypes.JSON(data)}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
	}).Create(&c).Error
}

// Clear empties the user's cart (after order placement).
func (r *CartRepository) Clear(userID uint) error {
	return r.ReplaceItems(userID, []entity.CartItem{})
}

// Total sums price*quantity over cart lines.
func Total(items []entity.CartItem) float64 {
	var total float64
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		total += it.Price * float64(qty)
	}
	return total
}
