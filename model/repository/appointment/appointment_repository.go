package appointment

import (
	"gorm.io/gorm"

	entity "carolinebride.GO/model/entity"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(a *entity.Appointment) error {
	return r.db.Create(a).Error
}

// FindByUserID returns a user's appointments, latest date first.
func (r *AppointmentRepository) FindByUserID(userID uint) ([]entity.Appointment, error) {
	var appts []entity.Appointment
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&appts).Error
	return appts, err
}

// FindAll returns every appointment, latest date first (admin grid).
func (r *AppointmentRepository) FindAll() ([]entity.Appointment, error) {
	var appts []entity.Appointment
	err := r.db.Order("date DESC").Find(&appts).Error
	return appts, err
}

// FindByDate returns appointments booked for one calendar date (YYYY-MM-DD).
func (r *AppointmentRepository) FindByDate(date string) ([]entity.Appointment, error) {
	var appts []entity.Appointment
	err := r.db.Where("date = ?", date).Order("time ASC").Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&entity.Appointment{}).Count(&n).Error
	return n, err
}
