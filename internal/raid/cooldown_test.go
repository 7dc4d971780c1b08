package raid

import (
	"testing"
	"time"

	"github.com/jx3tools/jx3-tracker-backend/internal/record"
)

// 2026-02-18 是周三
var testNow = time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)

func at(day, hour int) record.FlexTime {
	return record.FlexTime(time.Date(2026, 2, day, hour, 0, 0, 0, time.UTC).UnixMilli())
}

func raid25() *Raid {
	return &Raid{RaidID: "太极宫-25-英雄", Name: "太极宫", Difficulty: DifficultyHeroic, PlayerCount: 25}
}

func raid10() *Raid {
	return &Raid{RaidID: "太极宫-10-普通", Name: "太极宫", Difficulty: DifficultyNormal, PlayerCount: 10}
}

func TestCalculateCooldownNoRecords(t *testing.T) {
	info := CalculateCooldown(raid25(), nil, testNow)
	if !info.CanAdd {
		t.Error("没有记录时应可添加")
	}
	if info.CooldownType != CooldownNone {
		t.Errorf("CooldownType = %s, want none", info.CooldownType)
	}
	if info.HasRecordInCurrentCycle {
		t.Error("没有记录不应标记本周期已打")
	}
}

func TestCalculateCooldownWeekly(t *testing.T) {
	records := []record.RaidRecord{
		{RaidName: "太极宫", Date: at(17, 20)}, // 周二晚，本周期内
	}

	info := CalculateCooldown(raid25(), records, testNow)
	if info.CanAdd {
		t.Error("本周期已有记录的25人本应进CD")
	}
	if info.CooldownType != CooldownWeekly {
		t.Errorf("CooldownType = %s, want weekly", info.CooldownType)
	}

	wantEnd := time.Date(2026, 2, 23, 7, 0, 0, 0, time.UTC)
	if info.NextAvailableTime == nil || !info.NextAvailableTime.Equal(wantEnd) {
		t.Errorf("NextAvailableTime = %v, want %v", info.NextAvailableTime, wantEnd)
	}
	if info.RemainingTime != wantEnd.UnixMilli()-testNow.UnixMilli() {
		t.Errorf("RemainingTime = %d", info.RemainingTime)
	}
}

func TestCalculateCooldownLastCycleRecordIgnored(t *testing.T) {
	records := []record.RaidRecord{
		// 周一 06:59 属于上个周期
		{RaidName: "太极宫", Date: at(16, 6)},
	}

	info := CalculateCooldown(raid25(), records, testNow)
	if !info.CanAdd {
		t.Error("上周期的记录不应让本周期进CD")
	}
}

func TestCalculateCooldownTenPersonHalfWeek(t *testing.T) {
	records := []record.RaidRecord{
		{RaidName: "太极宫", Date: at(16, 8)}, // 周一早上，上半周
	}

	// 周三：仍在上半周，有记录进CD
	info := CalculateCooldown(raid10(), records, testNow)
	if info.CanAdd {
		t.Error("上半周已打的10人本在周四前应进CD")
	}
	if info.CooldownType != CooldownBiweekly {
		t.Errorf("CooldownType = %s, want biweekly", info.CooldownType)
	}
	wantEnd := time.Date(2026, 2, 20, 7, 0, 0, 0, time.UTC)
	if info.NextAvailableTime == nil || !info.NextAvailableTime.Equal(wantEnd) {
		t.Errorf("NextAvailableTime = %v, want 周五 07:00", info.NextAvailableTime)
	}

	// 周五 07:00 后进入下半周，同一条记录不再挡路
	friday := time.Date(2026, 2, 20, 7, 0, 0, 0, time.UTC)
	info = CalculateCooldown(raid10(), records, friday)
	if !info.CanAdd {
		t.Error("周五刷新后应可再次添加")
	}
}

func TestCalculateCooldownBossTracking(t *testing.T) {
	// 弓月城有5个默认BOSS
	r := &Raid{RaidID: "弓月城-25-英雄", Name: "弓月城", Difficulty: DifficultyHeroic, PlayerCount: 25}

	partial := []record.RaidRecord{
		{RaidName: "弓月城", Date: at(17, 20), BossIDs: record.StringSlice{"gongyuecheng_1", "gongyuecheng_2"}},
	}
	info := CalculateCooldown(r, partial, testNow)
	if !info.CanAdd {
		t.Error("BOSS追踪副本未全通时应可继续添加")
	}
	if info.HasRecordInCurrentCycle {
		t.Error("未全通不应标记为已全通")
	}

	cleared := append(partial, record.RaidRecord{
		RaidName: "弓月城", Date: at(18, 1),
		BossIDs: record.StringSlice{"gongyuecheng_3", "gongyuecheng_4", "gongyuecheng_5"},
	})
	info = CalculateCooldown(r, cleared, testNow)
	if !info.CanAdd {
		t.Error("全通后仍允许分配BOSS记录")
	}
	if !info.HasRecordInCurrentCycle {
		t.Error("全通后应标记本周期已全通")
	}
}

func TestCalculateBossCooldowns(t *testing.T) {
	r := &Raid{RaidID: "缚罪之渊-25-挑战", Name: "缚罪之渊", Difficulty: DifficultyChallenge, PlayerCount: 25}

	bossRecords := []record.BossRecord{
		{RoleID: "r1", BossID: "fuzuizhiyuan_1", Date: at(17, 21)},
		// 别的角色的击杀不影响r1
		{RoleID: "r2", BossID: "fuzuizhiyuan_2", Date: at(17, 22)},
		// 上周期的击杀不算
		{RoleID: "r1", BossID: "fuzuizhiyuan_2", Date: at(15, 12)},
	}

	cds := CalculateBossCooldowns(r, bossRecords, "r1", testNow)
	if len(cds) != 2 {
		t.Fatalf("缚罪之渊应有2个BOSS, got %d", len(cds))
	}

	if !cds[0].HasRecord || cds[0].CanAddRecord {
		t.Errorf("一号BOSS本周期已击杀: %+v", cds[0])
	}
	if cds[1].HasRecord || !cds[1].CanAddRecord {
		t.Errorf("二号BOSS本周期未击杀: %+v", cds[1])
	}

	status := SummarizeBossCooldowns(cds)
	if status.AllInCooldown || status.CompletedCount != 1 || status.TotalCount != 2 {
		t.Errorf("整体进度错误: %+v", status)
	}

	available := AvailableBosses(r, bossRecords, "r1", testNow)
	if len(available) != 1 || available[0].ID != "fuzuizhiyuan_2" {
		t.Errorf("可打BOSS应只剩二号: %+v", available)
	}
}

func TestCalculateBossCooldownsNoTracking(t *testing.T) {
	if cds := CalculateBossCooldowns(raid25(), nil, "r1", testNow); cds != nil {
		t.Errorf("未启用BOSS追踪应返回空: %+v", cds)
	}
}

func TestDefaultCatalogUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range DefaultCatalog() {
		if seen[r.RaidID] {
			t.Errorf("副本ID重复: %s", r.RaidID)
		}
		seen[r.RaidID] = true

		if r.PlayerCount != 10 && r.PlayerCount != 25 {
			t.Errorf("%s 的人数非法: %d", r.RaidID, r.PlayerCount)
		}
	}
}

func TestCooldownRules(t *testing.T) {
	if got := CooldownRules(raid10()); got != "10人本：每周一 7:00 和 周五 7:00 刷新" {
		t.Errorf("10人本规则文案: %q", got)
	}
	if got := CooldownRules(raid25()); got != "25人本：每周一 7:00 刷新" {
		t.Errorf("25人本规则文案: %q", got)
	}
}
