package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"social-client/internal/errors"
	"social-client/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthMode 定义凭证附加方式；每个部署只允许启用其中一种
type AuthMode string

const (
	// AuthModeBearer 通过 Authorization: Bearer 头携带令牌
	AuthModeBearer AuthMode = "bearer"
	// AuthModeUserID 通过 User-ID 头携带用户标识（旧部署兼容模式）
	AuthModeUserID AuthMode = "user-id"
)

// Credential 表示一次请求可附加的认证材料
type Credential struct {
	UserID int
	Token  string
}

// Empty 用于没有请求体或不关心响应体的调用
type Empty struct{}

// Client 是无状态的请求管道：编码、附加凭证、发送、按状态码分类、解码。
// 不做重试、不做缓存；超时属于传输层，超时失败归类为 KindTransport。
type Client struct {
	baseURL    string
	httpClient *http.Client
	authMode   AuthMode
}

// NewClient 创建一个新的 Client 实例
func NewClient(baseURL string, timeout time.Duration, mode AuthMode) *Client {
	if mode != AuthModeUserID {
		mode = AuthModeBearer
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		authMode:   mode,
	}
}

// BaseURL 返回服务端基础地址
func (c *Client) BaseURL() string {
	return c.baseURL
}

// 服务端非2xx时的结构化错误体
type errorBody struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// Execute 执行一次带类型的请求。body 为 nil 时不发送请求体；
// cred 为 nil 时不附加凭证头。当 Resp 为 string 时返回原始 UTF-8
// 响应文本而非 JSON 解码结果（部分接口只返回确认字符串）。
func Execute[Req any, Resp any](ctx context.Context, c *Client, method, target string, body *Req, cred *Credential) (Resp, error) {
	var zero Resp

	if !allowedMethods[method] {
		return zero, errors.New(errors.KindInvalidTarget, "unsupported http method: "+method)
	}
	if _, err := url.ParseRequestURI(target); err != nil {
		return zero, errors.Wrap(errors.KindInvalidTarget, "invalid request target: "+target, err)
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return zero, errors.Wrap(errors.KindEncoding, "failed to encode request body", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return zero, errors.Wrap(errors.KindInvalidTarget, "failed to build request", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if cred != nil {
		c.attachCredential(req, cred)
	}

	util.Logger.Debug("发送请求",
		zap.String("method", method),
		zap.String("target", target),
		zap.String("requestId", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		util.Logger.Warn("请求发送失败",
			zap.String("target", target),
			zap.String("requestId", requestID),
			zap.Error(err))
		return zero, errors.Wrap(errors.KindTransport, "request failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, errors.Wrap(errors.KindTransport, "failed to read response body", err)
	}

	util.Logger.Debug("收到响应",
		zap.String("target", target),
		zap.String("requestId", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(data)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, classifyFailure(resp.StatusCode, data)
	}

	// 原始文本模式：调用方期望的是裸字符串而非 JSON
	if text, ok := any(&zero).(*string); ok {
		*text = string(data)
		return zero, nil
	}

	if err := json.Unmarshal(data, &zero); err != nil {
		util.Logger.Warn("响应解码失败",
			zap.String("target", target),
			zap.String("requestId", requestID),
			zap.Error(err))
		var blank Resp
		return blank, errors.Wrap(errors.KindDecoding, "failed to decode response", err)
	}
	return zero, nil
}

// attachCredential 按部署模式附加唯一的凭证头
func (c *Client) attachCredential(req *http.Request, cred *Credential) {
	switch c.authMode {
	case AuthModeUserID:
		req.Header.Set("User-ID", strconv.Itoa(cred.UserID))
	default:
		req.Header.Set("Authorization", "Bearer "+cred.Token)
	}
}

// classifyFailure 将非2xx响应归类：能解析出结构化错误体的归入
// KindServerError，否则归入 KindServerStatus
func classifyFailure(status int, data []byte) error {
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return errors.NewServerError(status, body.Message, body.Details)
	}
	return errors.NewServerStatus(status)
}
