package gametime

import (
	"fmt"
	"time"
)

// Cycle 是一个左闭右开的CD周期 [Start, End)
type Cycle struct {
	Start time.Time
	End   time.Time
}

// Contains 判断时间戳（epoch毫秒）是否落在周期内
func (c Cycle) Contains(millis int64) bool {
	return millis >= c.Start.UnixMilli() && millis < c.End.UnixMilli()
}

// WeeklyCycle 返回25人本的当前CD周期：周一 07:00 ~ 下周一 07:00。
func WeeklyCycle(t time.Time) Cycle {
	start := LastWeeklyReset(t)
	return Cycle{Start: start, End: start.AddDate(0, 0, 7)}
}

// HalfWeekCycle 返回10人本的当前CD周期。
// 周期1: 周一 07:00 ~ 周五 07:00；周期2: 周五 07:00 ~ 下周一 07:00。
// 周一凌晨（上个周期的尾巴）会落在上周五开始的周期2里。
func HalfWeekCycle(t time.Time) Cycle {
	lastMonday := LastWeeklyReset(t)
	friday := lastMonday.AddDate(0, 0, 4)
	nextMonday := lastMonday.AddDate(0, 0, 7)

	if !t.Before(lastMonday) && t.Before(friday) {
		return Cycle{Start: lastMonday, End: friday}
	}
	return Cycle{Start: friday, End: nextMonday}
}

// FormatRemaining 把剩余毫秒数格式化为人类可读的中文时长。
func FormatRemaining(ms int64) string {
	if ms <= 0 {
		return "可添加"
	}

	d := time.Duration(ms) * time.Millisecond
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%d天%d小时", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%d小时%d分钟", hours, minutes)
	}
	return fmt.Sprintf("%d分钟", minutes)
}
