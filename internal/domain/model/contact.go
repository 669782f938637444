package model

import "time"

// お問い合わせフォーム
type ContactMessage struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id" bson:"id"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name" bson:"full_name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email" bson:"email"`
	Phone     string    `gorm:"type:varchar(30);not null" json:"phone" bson:"phone"`
	Subject   string    `gorm:"type:varchar(255);not null" json:"subject" bson:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message" bson:"message"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at" bson:"created_at"`
}
