package session

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/SlpAus/skillswap-connect-backend/internal/platform/apierror"
)

// acceptedTimeLayouts 是客户端可能提交的时间格式，前端直接把用户输入的
// "2025-09-08 18:00" 之类的文本原样发送过来
// JSON 只能表示 0000 到 9999 年之间的时间
var (
	minMillis = time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	maxMillis = time.Date(9999, 12, 31, 23, 59, 59, 999_000_000, time.UTC).UnixMilli()
)

var acceptedTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime 解析会话的 time 字段：
// 缺省、null、空串或 0 返回零值（由账本使用当前时间），
// 数字视为Unix毫秒，字符串按 acceptedTimeLayouts 依次尝试（无时区的按UTC处理）。
func ParseTime(raw json.RawMessage) (time.Time, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}, nil
	}

	var millis float64
	if err := json.Unmarshal(raw, &millis); err == nil {
		if millis == 0 {
			return time.Time{}, nil
		}
		if math.IsInf(millis, 0) || math.IsNaN(millis) ||
			millis < float64(minMillis) || millis > float64(maxMillis) {
			return time.Time{}, invalidTime()
		}
		return checkRange(time.UnixMilli(int64(millis)).UTC())
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return time.Time{}, invalidTime()
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, nil
	}
	for _, layout := range acceptedTimeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return checkRange(t.UTC())
		}
	}
	return time.Time{}, invalidTime()
}

func checkRange(t time.Time) (time.Time, error) {
	if y := t.Year(); y < 0 || y > 9999 {
		return time.Time{}, invalidTime()
	}
	return t, nil
}

func invalidTime() error {
	return apierror.InvalidInput("time must be an RFC 3339 / 'YYYY-MM-DD HH:MM' string or Unix milliseconds")
}
