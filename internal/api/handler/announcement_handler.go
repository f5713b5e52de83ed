package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"sumit-cafe/backend/internal/dto"
	"sumit-cafe/backend/internal/service"
	"sumit-cafe/backend/pkg/response"
)

// AnnouncementHandler 公告模块 HTTP 处理器
// 公开端点只见活跃公告；管理端点可见全量。
// "当前时间" 在此处取一次并传入 Service，Service 与查询引擎不读时钟。
type AnnouncementHandler struct {
	announcementSvc service.AnnouncementService
}

// NewAnnouncementHandler 创建 AnnouncementHandler
func NewAnnouncementHandler(announcementSvc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementSvc: announcementSvc}
}

// ListPublic 公开公告列表
// GET /api/v1/announcements?category=&search=
func (h *AnnouncementHandler) ListPublic(c *gin.Context) {
	var req dto.AnnouncementListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, err := h.announcementSvc.ListPublic(c.Request.Context(), &req, time.Now())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// Preview 首页预告（至多 6 条的固定配额选取）
// GET /api/v1/announcements/preview
func (h *AnnouncementHandler) Preview(c *gin.Context) {
	list, err := h.announcementSvc.Preview(c.Request.Context(), time.Now())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// GetPublic 公开公告详情（阅读全文页）
// GET /api/v1/announcements/:id
func (h *AnnouncementHandler) GetPublic(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "公告ID不能为空")
		return
	}

	a, err := h.announcementSvc.GetPublicByID(c.Request.Context(), id, time.Now())
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.OK(c, a)
}

// ListAdmin 管理端公告列表（含未激活与已过期）
// GET /api/v1/admin/announcements
func (h *AnnouncementHandler) ListAdmin(c *gin.Context) {
	var req dto.AnnouncementListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	list, err := h.announcementSvc.ListAdmin(c.Request.Context(), &req, time.Now())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// Create 创建公告
// POST /api/v1/admin/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	a, err := h.announcementSvc.Create(c.Request.Context(), &req, time.Now())
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.Created(c, a)
}

// Update 部分更新公告
// PATCH /api/v1/admin/announcements/:id
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "公告ID不能为空")
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	a, err := h.announcementSvc.Update(c.Request.Context(), id, &req, time.Now())
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.OK(c, a)
}

// Delete 永久删除公告
// DELETE /api/v1/admin/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "公告ID不能为空")
		return
	}

	if err := h.announcementSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleAnnouncementError 统一处理公告模块业务错误
func (h *AnnouncementHandler) handleAnnouncementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAnnouncementNotFound):
		response.NotFound(c, 12001, "公告不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/announcement_handler.go
