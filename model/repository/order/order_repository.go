package order

import (
	"errors"

	"gorm.io/gorm"

	entity "carolinebride.GO/model/entity"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(o *entity.Order) error {
	return r.db.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.db.First(&o, "order_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindByUserID returns a user's orders, newest first.
func (r *OrderRepository) FindByUserID(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// FindAll returns every order, newest first (admin grid).
func (r *OrderRepository) FindAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// UpdateStatus sets a new status and returns the updated order.
// Returns gorm.ErrRecordNotFound when no such order exists.
func (r *OrderRepository) UpdateStatus(id uint, status string) (*entity.Order, error) {
	res := r.db.Model(&entity.Order{}).Where("order_id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

func (r *OrderRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&entity.Order{}).Count(&n).Error
	return n, err
}

// IsNotFound reports whether err is the repository's not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
