package entity

import "time"

type Appointment struct {
	AppointmentID uint      `gorm:"column:appointment_id;primaryKey;autoIncrement"`
	UserID        uint      `gorm:"column:user_id;not null;index"`
	Name          string    `gorm:"column:name;type:varchar(128);not null"`
	Email         string    `gorm:"column:email;type:varchar(128);not null"`
	Phone         string    `gorm:"column:phone;type:varchar(32);not null"`
	Date          string    `gorm:"column:date;type:varchar(10);not null;index"`
	Time          string    `gorm:"column:time;type:varchar(8);not null"`
	Service       string    `gorm:"column:service;type:varchar(64);not null"`
	Address       *string   `gorm:"column:address;type:varchar(255)"`
	StoreLocation *string   `gorm:"column:store_location;type:varchar(128)"`
	PaymentMethod *string   `gorm:"column:payment_method;type:varchar(32)"`
	Notes         *string   `gorm:"column:notes;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Appointment) TableName() string {
	return "appointments"
}
