package errors

// 类别与用户可见提示的映射
var kindMessageMap = map[Kind]string{
	KindTransport:      "Network error occurred. Please check your connection.",
	KindEncoding:       "Failed to prepare the request.",
	KindDecoding:       "Received an unexpected response from the server.",
	KindUnauthorized:   "You need to be logged in to do that.",
	KindInvalidTarget:  "Invalid request target.",
	KindInvalidRequest: "Invalid input.",
	KindServerStatus:   "The server rejected the request.",
	KindServerError:    "The server rejected the request.",
}

// UserMessage 将任意错误转换为用户可见的提示文本。
// 服务端返回的结构化 message 优先于按类别生成的通用提示。
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	if apiErr, ok := err.(*APIError); ok {
		if apiErr.Kind == KindServerError && apiErr.Message != "" {
			return apiErr.Message
		}
		if msg, ok := kindMessageMap[apiErr.Kind]; ok {
			return msg
		}
	}
	return "Something went wrong. Please try again."
}
