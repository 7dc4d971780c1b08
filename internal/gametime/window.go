// Package gametime 提供剑网3副本CD相关的时间窗口计算。
//
// 注意两条不同的周边界：
//   - 统计筛选用的"本周"是自然周（周一 00:00 起算）；
//   - 副本CD刷新点是每周一 07:00，两者相差的周一凌晨时段不能混用。
package gametime

import (
	"time"

	"github.com/jinzhu/now"
)

// Period 是统计时间范围的选择器
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ParsePeriod 解析查询参数里的时间范围，无法识别时回退到本周
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodAll:
		return Period(s)
	default:
		return PeriodWeek
	}
}

// ResetHour 是游戏内每周CD刷新的整点（周一 07:00）
const ResetHour = 7

// PeriodStart 返回统计窗口的起始边界（含）。
// week: 本自然周周一 00:00；month: 本月1日 00:00；all: 十年前（视为无界）。
// 窗口没有上界，始终延伸到"现在"。
func PeriodStart(t time.Time, period Period) time.Time {
	cfg := &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: t.Location(),
	}

	switch period {
	case PeriodMonth:
		return cfg.With(t).BeginningOfMonth()
	case PeriodAll:
		return cfg.With(t.AddDate(-10, 0, 0)).BeginningOfDay()
	default:
		// 周日按一周的第7天处理，由WeekStartDay=Monday保证
		return cfg.With(t).BeginningOfWeek()
	}
}

// daysSinceMonday 返回t距离本周周一的天数（周一=0，周日=6）
func daysSinceMonday(t time.Time) int {
	day := int(t.Weekday())
	if day == 0 {
		return 6
	}
	return day - 1
}

// LastWeeklyReset 返回最近一次周CD刷新点：当前时间之前（含）最近的周一 07:00。
// 周一 00:00~07:00 之间属于上一个CD周期，因此要回退整整一周。
func LastWeeklyReset(t time.Time) time.Time {
	reset := time.Date(t.Year(), t.Month(), t.Day(), ResetHour, 0, 0, 0, t.Location())
	reset = reset.AddDate(0, 0, -daysSinceMonday(t))
	if reset.After(t) {
		reset = reset.AddDate(0, 0, -7)
	}
	return reset
}

// NextWeeklyReset 返回下一次周CD刷新点（周一 07:00）。
func NextWeeklyReset(t time.Time) time.Time {
	return LastWeeklyReset(t).AddDate(0, 0, 7)
}

// InWindow 判断一条记录的时间戳（epoch毫秒）是否落在窗口内。
// 下界为含，上界始终是"现在"。
func InWindow(recordMillis int64, start time.Time) bool {
	return recordMillis >= start.UnixMilli()
}
