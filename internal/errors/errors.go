package errors

import "fmt"

// Kind 定义失败类别类型
type Kind int

// 定义传输与编解码相关失败 (1000-1999)
const (
	KindTransport Kind = 1000 + iota
	KindEncoding
	KindDecoding
)

// 定义认证相关失败 (2000-2999)
const (
	KindUnauthorized Kind = 2000 + iota
)

// 定义请求构造相关失败 (3000-3999)
const (
	KindInvalidTarget Kind = 3000 + iota
	KindInvalidRequest
)

// 定义服务端响应相关失败 (4000-4999)
const (
	KindServerStatus Kind = 4000 + iota
	KindServerError
)

// APIError 定义客户端统一错误结构，所有组件的失败最终都归入某个 Kind
type APIError struct {
	Kind    Kind
	Status  int // 服务端返回的HTTP状态码，本地产生的失败为0
	Message string
	Details string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("[%d] %s (status %d)", e.Kind, e.Message, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// New 创建新的客户端错误
func New(kind Kind, message string) *APIError {
	return &APIError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap 包装已有错误
func Wrap(kind Kind, message string, err error) *APIError {
	return &APIError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// NewServerError 创建带结构化错误体的服务端错误
func NewServerError(status int, message, details string) *APIError {
	return &APIError{
		Kind:    KindServerError,
		Status:  status,
		Message: message,
		Details: details,
	}
}

// NewServerStatus 创建无结构化错误体的服务端状态错误
func NewServerStatus(status int) *APIError {
	return &APIError{
		Kind:    KindServerStatus,
		Status:  status,
		Message: fmt.Sprintf("server returned status %d", status),
	}
}

// GetKind 提取错误的类别；非 APIError 一律视为传输失败
func GetKind(err error) Kind {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Kind
	}
	return KindTransport
}

// IsKind 判断错误是否属于指定类别
func IsKind(err error, kind Kind) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Kind == kind
}
