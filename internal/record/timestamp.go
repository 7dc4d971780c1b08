package record

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// FlexTime 是记录的时间戳类型，内部统一为epoch毫秒。
// 历史数据里date字段既有ISO字符串也有epoch毫秒数字，两种形态都在
// JSON边界一次性归一化，核心计算只看毫秒数（见 EpochMillis）。
type FlexTime int64

// Millis 返回epoch毫秒值
func (t FlexTime) Millis() int64 {
	return int64(t)
}

// Time 返回本地时区的time.Time
func (t FlexTime) Time() time.Time {
	return time.UnixMilli(int64(t))
}

// IsZero 判断是否为空（缺失或无法解析的时间）
func (t FlexTime) IsZero() bool {
	return t == 0
}

// UnmarshalJSON 同时接受数字（epoch毫秒）和日期字符串两种输入
func (t *FlexTime) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*t = 0
		return nil
	}

	if s != "" && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*t = FlexTime(parseDateString(str))
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*t = FlexTime(int64(num))
	return nil
}

// MarshalJSON 统一输出epoch毫秒数字
func (t FlexTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(t), 10)), nil
}

// dateLayouts 覆盖历史数据中出现过的所有日期字符串格式
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDateString 解析日期字符串为epoch毫秒，失败返回0。
// 0会排在所有有效时间之前，不会破坏排序的传递性。
func parseDateString(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	for _, layout := range dateLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts.UnixMilli()
		}
	}
	return 0
}

// EpochMillis 把任意形态的date值归一化为epoch毫秒。
// 数字原样视为epoch毫秒；字符串按日期解析；无法解析返回0。
func EpochMillis(v interface{}) int64 {
	switch val := v.(type) {
	case nil:
		return 0
	case int64:
		return val
	case int:
		return int64(val)
	case float64:
		return int64(val)
	case FlexTime:
		return val.Millis()
	case time.Time:
		return val.UnixMilli()
	case string:
		return parseDateString(val)
	default:
		return 0
	}
}
