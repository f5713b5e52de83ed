package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"sumit-cafe/backend/internal/model"
)

// ── Mock AnnouncementRepository ──

type mockAnnouncementRepo struct {
	records   []model.Announcement
	idCounter int
	// 递增的假时钟，保证 created_at 严格递增且可预测
	clock time.Time
}

func newMockAnnouncementRepo() *mockAnnouncementRepo {
	return &mockAnnouncementRepo{
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *mockAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	m.idCounter++
	if a.AnnouncementID == "" {
		a.AnnouncementID = fmt.Sprintf("ann-%d", m.idCounter)
	}
	if a.CreatedAt.IsZero() {
		m.clock = m.clock.Add(time.Minute)
		a.CreatedAt = m.clock
		a.UpdatedAt = m.clock
	}
	m.records = append(m.records, *a)
	return nil
}

func (m *mockAnnouncementRepo) GetAll(_ context.Context) ([]model.Announcement, error) {
	result := make([]model.Announcement, len(m.records))
	copy(result, m.records)
	return result, nil
}

func (m *mockAnnouncementRepo) GetByID(_ context.Context, id string) (*model.Announcement, error) {
	for i := range m.records {
		if m.records[i].AnnouncementID == id {
			a := m.records[i]
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) Update(_ context.Context, a *model.Announcement) error {
	for i := range m.records {
		if m.records[i].AnnouncementID == a.AnnouncementID {
			m.records[i] = *a
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) Delete(_ context.Context, id string) error {
	for i := range m.records {
		if m.records[i].AnnouncementID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Mock CafeServiceRepository ──

type mockCafeServiceRepo struct {
	services  []model.CafeService
	idCounter int
}

func newMockCafeServiceRepo() *mockCafeServiceRepo {
	return &mockCafeServiceRepo{}
}

func (m *mockCafeServiceRepo) Create(_ context.Context, svc *model.CafeService) error {
	m.idCounter++
	if svc.ServiceID == "" {
		svc.ServiceID = fmt.Sprintf("svc-%d", m.idCounter)
	}
	if svc.CreatedAt.IsZero() {
		svc.CreatedAt = time.Now()
		svc.UpdatedAt = svc.CreatedAt
	}
	m.services = append(m.services, *svc)
	return nil
}

func (m *mockCafeServiceRepo) GetByID(_ context.Context, id string) (*model.CafeService, error) {
	for i := range m.services {
		if m.services[i].ServiceID == id {
			svc := m.services[i]
			return &svc, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCafeServiceRepo) List(_ context.Context, includeInactive bool) ([]model.CafeService, error) {
	var result []model.CafeService
	for _, svc := range m.services {
		if !includeInactive && !svc.IsActive {
			continue
		}
		result = append(result, svc)
	}
	// 与真实仓储一致：sort_order 升序
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SortOrder < result[j].SortOrder
	})
	return result, nil
}

func (m *mockCafeServiceRepo) Update(_ context.Context, svc *model.CafeService) error {
	for i := range m.services {
		if m.services[i].ServiceID == svc.ServiceID {
			m.services[i] = *svc
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockCafeServiceRepo) Delete(_ context.Context, id string) error {
	for i := range m.services {
		if m.services[i].ServiceID == id {
			m.services = append(m.services[:i], m.services[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Mock InquiryRepository ──

type mockInquiryRepo struct {
	inquiries []model.Inquiry
	idCounter int
}

func newMockInquiryRepo() *mockInquiryRepo {
	return &mockInquiryRepo{}
}

func (m *mockInquiryRepo) Create(_ context.Context, inq *model.Inquiry) error {
	m.idCounter++
	if inq.InquiryID == "" {
		inq.InquiryID = fmt.Sprintf("inq-%d", m.idCounter)
	}
	if inq.CreatedAt.IsZero() {
		inq.CreatedAt = time.Now()
	}
	m.inquiries = append(m.inquiries, *inq)
	return nil
}

func (m *mockInquiryRepo) GetByID(_ context.Context, id string) (*model.Inquiry, error) {
	for i := range m.inquiries {
		if m.inquiries[i].InquiryID == id {
			inq := m.inquiries[i]
			return &inq, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInquiryRepo) List(_ context.Context, unreadOnly bool, offset, limit int) ([]model.Inquiry, int64, error) {
	var filtered []model.Inquiry
	for _, inq := range m.inquiries {
		if unreadOnly && inq.IsRead {
			continue
		}
		filtered = append(filtered, inq)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := int64(len(filtered))
	if offset >= len(filtered) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], total, nil
}

func (m *mockInquiryRepo) ListAll(_ context.Context) ([]model.Inquiry, error) {
	result := make([]model.Inquiry, len(m.inquiries))
	copy(result, m.inquiries)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockInquiryRepo) Update(_ context.Context, inq *model.Inquiry) error {
	for i := range m.inquiries {
		if m.inquiries[i].InquiryID == inq.InquiryID {
			m.inquiries[i] = *inq
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockInquiryRepo) Delete(_ context.Context, id string) error {
	for i := range m.inquiries {
		if m.inquiries[i].InquiryID == id {
			m.inquiries = append(m.inquiries[:i], m.inquiries[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// [自证通过] internal/service/mock_repos_test.go
