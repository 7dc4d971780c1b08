package gametime

import (
	"testing"
	"time"
)

// 2026-02-16 是周一
var anchorMonday = time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)

func TestLastWeeklyReset(t *testing.T) {
	thisMonday7 := time.Date(2026, 2, 16, 7, 0, 0, 0, time.UTC)
	prevMonday7 := time.Date(2026, 2, 9, 7, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want time.Time
	}{
		{"周一 06:59 属于上个周期", time.Date(2026, 2, 16, 6, 59, 0, 0, time.UTC), prevMonday7},
		{"周一 07:00 整点切换", thisMonday7, thisMonday7},
		{"周一 07:01 属于新周期", time.Date(2026, 2, 16, 7, 1, 0, 0, time.UTC), thisMonday7},
		{"周三中午", time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC), thisMonday7},
		{"周日深夜", time.Date(2026, 2, 22, 23, 59, 0, 0, time.UTC), thisMonday7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LastWeeklyReset(tt.at)
			if !got.Equal(tt.want) {
				t.Errorf("LastWeeklyReset(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestWeeklyResetSpacing(t *testing.T) {
	at := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)
	last := LastWeeklyReset(at)
	next := NextWeeklyReset(at)

	if got := next.Sub(last); got != 7*24*time.Hour {
		t.Errorf("刷新点间隔 = %v, want 168h", got)
	}
	if !last.Before(at) || !next.After(at) {
		t.Errorf("当前时间应落在 [%v, %v) 内", last, next)
	}
}

func TestLastWeeklyResetMonotonic(t *testing.T) {
	// 连续14天逐小时扫过，刷新点只能前进不能后退
	prev := LastWeeklyReset(anchorMonday)
	for h := 1; h <= 14*24; h++ {
		at := anchorMonday.Add(time.Duration(h) * time.Hour)
		cur := LastWeeklyReset(at)
		if cur.Before(prev) {
			t.Fatalf("刷新点在 %v 处回退: %v -> %v", at, prev, cur)
		}
		prev = cur
	}
}

func TestPeriodStart(t *testing.T) {
	wednesday := time.Date(2026, 2, 18, 15, 30, 0, 0, time.UTC)
	sunday := time.Date(2026, 2, 22, 1, 0, 0, 0, time.UTC)

	weekStart := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)
	if got := PeriodStart(wednesday, PeriodWeek); !got.Equal(weekStart) {
		t.Errorf("week窗口起点 = %v, want %v", got, weekStart)
	}
	// 周日属于本周第7天，不能跳到下周一
	if got := PeriodStart(sunday, PeriodWeek); !got.Equal(weekStart) {
		t.Errorf("周日的week窗口起点 = %v, want %v", got, weekStart)
	}

	monthStart := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	if got := PeriodStart(wednesday, PeriodMonth); !got.Equal(monthStart) {
		t.Errorf("month窗口起点 = %v, want %v", got, monthStart)
	}

	if got := PeriodStart(wednesday, PeriodAll); got.Year() != 2016 {
		t.Errorf("all窗口起点应在十年前, got %v", got)
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
	}{
		{"week", PeriodWeek},
		{"month", PeriodMonth},
		{"all", PeriodAll},
		{"", PeriodWeek},
		{"year", PeriodWeek},
	}
	for _, tt := range tests {
		if got := ParsePeriod(tt.in); got != tt.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInWindowInclusiveLowerBound(t *testing.T) {
	start := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)

	if !InWindow(start.UnixMilli(), start) {
		t.Error("正好落在窗口起点的记录应计入")
	}
	if InWindow(start.UnixMilli()-1, start) {
		t.Error("起点前1毫秒的记录不应计入")
	}
	if !InWindow(start.UnixMilli()+1, start) {
		t.Error("起点后的记录应计入")
	}
}
