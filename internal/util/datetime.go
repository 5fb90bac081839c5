package util

import (
	"strconv"
	"time"
)

// 服务端时间字符串格式，微秒精度、无时区
const serverTimeLayout = "2006-01-02T15:04:05.000000"

// FormatCreatedAt 将服务端时间字符串格式化为可读形式，解析失败返回空串
func FormatCreatedAt(s string) string {
	t, err := time.Parse(serverTimeLayout, s)
	if err != nil {
		return ""
	}
	return t.Format("Jan 2, 2006 at 15:04")
}

// RelativeTime 返回相对当前时刻的简短描述，解析失败返回空串
func RelativeTime(s string) string {
	t, err := time.Parse(serverTimeLayout, s)
	if err != nil {
		return ""
	}

	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return pluralize(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return pluralize(int(d.Hours()), "hour")
	default:
		return pluralize(int(d.Hours()/24), "day")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return strconv.Itoa(n) + " " + unit + "s ago"
}
