package progress

import (
	"testing"
	"time"

	"github.com/jx3tools/jx3-tracker-backend/internal/record"
)

// 2026-02-18 是周三，本周CD从 2026-02-16（周一）07:00 起算
var testNow = time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)

func millis(day, hour int) record.FlexTime {
	return record.FlexTime(time.Date(2026, 2, day, hour, 0, 0, 0, time.UTC).UnixMilli())
}

func TestClassifyTrialBoundaries(t *testing.T) {
	tests := []struct {
		count int
		want  Status
	}{
		{0, StatusNotStarted},
		{1, StatusPartial},
		{2, StatusPartial},
		{3, StatusComplete},
		{4, StatusComplete},
	}
	for _, tt := range tests {
		if got := Classify(tt.count, TrialWeeklyCap); got != tt.want {
			t.Errorf("Classify(%d, 3) = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestClassifyBaizhanTwoState(t *testing.T) {
	// 上限1不存在"进行中"
	if got := Classify(0, BaizhanWeeklyCap); got != StatusNotStarted {
		t.Errorf("Classify(0, 1) = %v, want 未开始", got)
	}
	if got := Classify(1, BaizhanWeeklyCap); got != StatusComplete {
		t.Errorf("Classify(1, 1) = %v, want 已完成", got)
	}
	if got := Classify(2, BaizhanWeeklyCap); got != StatusComplete {
		t.Errorf("Classify(2, 1) = %v, want 已完成", got)
	}
}

func TestTrialProgress(t *testing.T) {
	records := []record.TrialRecord{
		// 本周内2次
		{RoleID: "r1", Date: millis(16, 8), Layer: 30},
		{RoleID: "r1", Date: millis(17, 20), Layer: 45},
		// 周一07:00前属于上周，不计入周内次数，但参与最高层和最近时间
		{RoleID: "r1", Date: millis(16, 6), Layer: 60},
		// 其他角色的记录不掺和
		{RoleID: "r2", Date: millis(17, 10), Layer: 99},
	}

	s := TrialProgress("r1", records, testNow)
	if s.WeeklyCount != 2 {
		t.Errorf("WeeklyCount = %d, want 2", s.WeeklyCount)
	}
	if s.Status != StatusPartial {
		t.Errorf("Status = %v, want 进行中", s.Status)
	}
	if s.MaxLayer != 60 {
		t.Errorf("MaxLayer = %d, want 60（看全部历史）", s.MaxLayer)
	}
	if s.LastRun != millis(17, 20) {
		t.Errorf("LastRun = %d, want %d", s.LastRun, millis(17, 20))
	}
}

func TestTrialProgressEmpty(t *testing.T) {
	s := TrialProgress("r1", nil, testNow)
	if s.Status != StatusNotStarted || s.WeeklyCount != 0 || s.MaxLayer != 0 || !s.LastRun.IsZero() {
		t.Errorf("没有记录时应全零: %+v", s)
	}
}

func TestBaizhanProgress(t *testing.T) {
	records := []record.BaizhanRecord{
		{RoleID: "r1", Date: millis(16, 9), GoldIncome: 800},
		// 上周记录：金币不计入周收入
		{RoleID: "r1", Date: millis(15, 12), GoldIncome: 500},
	}

	s := BaizhanProgress("r1", records, testNow)
	if s.WeeklyCount != 1 {
		t.Errorf("WeeklyCount = %d, want 1", s.WeeklyCount)
	}
	if s.Status != StatusComplete {
		t.Errorf("Status = %v, want 已完成", s.Status)
	}
	if s.WeeklyIncome != 800 {
		t.Errorf("WeeklyIncome = %d, want 800", s.WeeklyIncome)
	}
	if s.LastRun != millis(16, 9) {
		t.Errorf("LastRun = %d, want %d", s.LastRun, millis(16, 9))
	}
}
