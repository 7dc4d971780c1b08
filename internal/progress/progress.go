package progress

import (
	"time"

	"github.com/jx3tools/jx3-tracker-backend/internal/gametime"
	"github.com/jx3tools/jx3-tracker-backend/internal/record"
)

// Status 是角色本周进度的三态分类
type Status int

const (
	StatusNotStarted Status = iota
	StatusPartial
	StatusComplete
)

// 每周次数上限
const (
	TrialWeeklyCap   = 3
	BaizhanWeeklyCap = 1
)

// Label 返回状态的中文文案
func (s Status) Label() string {
	switch s {
	case StatusComplete:
		return "已完成"
	case StatusPartial:
		return "进行中"
	default:
		return "未开始"
	}
}

// Classify 按周内次数和上限划分状态。
// 上限为1时不存在"进行中"，只有未开始/已完成两态。
func Classify(weeklyCount, cap int) Status {
	if weeklyCount <= 0 {
		return StatusNotStarted
	}
	if weeklyCount >= cap {
		return StatusComplete
	}
	return StatusPartial
}

// TrialSummary 是单个角色的试炼之地周进度
type TrialSummary struct {
	RoleID      string          `json:"roleId"`
	WeeklyCount int             `json:"weeklyCount"`
	WeeklyCap   int             `json:"weeklyCap"`
	MaxLayer    int             `json:"maxLayer"`
	LastRun     record.FlexTime `json:"lastRun"`
	Status      Status          `json:"status"`
	StatusLabel string          `json:"statusLabel"`
}

// TrialProgress 汇总角色的试炼进度：周内次数按周一7点重置窗口统计，
// 最高层数和最近挑战时间看全部历史。
func TrialProgress(roleID string, records []record.TrialRecord, now time.Time) TrialSummary {
	resetAt := gametime.LastWeeklyReset(now)

	summary := TrialSummary{
		RoleID:    roleID,
		WeeklyCap: TrialWeeklyCap,
	}

	for i := range records {
		rec := &records[i]
		if rec.RoleID != roleID {
			continue
		}
		if gametime.InWindow(rec.Date.Millis(), resetAt) {
			summary.WeeklyCount++
		}
		if rec.Layer > summary.MaxLayer {
			summary.MaxLayer = rec.Layer
		}
		if rec.Date > summary.LastRun {
			summary.LastRun = rec.Date
		}
	}

	summary.Status = Classify(summary.WeeklyCount, TrialWeeklyCap)
	summary.StatusLabel = summary.Status.Label()
	return summary
}

// BaizhanSummary 是单个角色的百战异闻录周进度
type BaizhanSummary struct {
	RoleID       string          `json:"roleId"`
	WeeklyCount  int             `json:"weeklyCount"`
	WeeklyCap    int             `json:"weeklyCap"`
	WeeklyIncome int64           `json:"weeklyIncome"`
	LastRun      record.FlexTime `json:"lastRun"`
	Status       Status          `json:"status"`
	StatusLabel  string          `json:"statusLabel"`
}

// BaizhanProgress 汇总角色的百战周进度，周入账一并统计
func BaizhanProgress(roleID string, records []record.BaizhanRecord, now time.Time) BaizhanSummary {
	resetAt := gametime.LastWeeklyReset(now)

	summary := BaizhanSummary{
		RoleID:    roleID,
		WeeklyCap: BaizhanWeeklyCap,
	}

	for i := range records {
		rec := &records[i]
		if rec.RoleID != roleID {
			continue
		}
		if gametime.InWindow(rec.Date.Millis(), resetAt) {
			summary.WeeklyCount++
			summary.WeeklyIncome += int64(rec.GoldIncome)
		}
		if rec.Date > summary.LastRun {
			summary.LastRun = rec.Date
		}
	}

	summary.Status = Classify(summary.WeeklyCount, BaizhanWeeklyCap)
	summary.StatusLabel = summary.Status.Label()
	return summary
}
