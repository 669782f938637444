package model

import "time"

type User struct {
	ID              string `gorm:"type:uuid;primaryKey" json:"id" bson:"id"`
	Email           string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" bson:"email"`
	FullName        string `gorm:"type:varchar(255);not null" json:"full_name" bson:"full_name"`
	Phone           string `gorm:"type:varchar(30);not null;default:''" json:"phone" bson:"phone"`
	ShippingAddress `bson:",inline"`
	PasswordHash    string    `gorm:"column:hashed_password;not null" json:"-" bson:"hashed_password"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at" bson:"updated_at"`
}
