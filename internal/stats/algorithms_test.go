package stats

import (
	"testing"
	"time"

	"github.com/jx3tools/jx3-tracker-backend/internal/account"
	"github.com/jx3tools/jx3-tracker-backend/internal/equipment"
	"github.com/jx3tools/jx3-tracker-backend/internal/record"
)

func testAccounts() []account.Account {
	return []account.Account{
		{AccountID: "own-1", Type: account.TypeOwn},
		{AccountID: "client-1", Type: account.TypeClient},
		{AccountID: "client-off", Type: account.TypeClient, Disabled: true},
	}
}

// 固定的装备表：e1可交易，e2拾取绑定
func testLookup(equipID string) (equipment.Equipment, bool) {
	switch equipID {
	case "e1":
		return equipment.Equipment{EquipID: "e1", Name: "无修·气劲·腰坠", BindType: equipment.BindOnEquip}, true
	case "e2":
		return equipment.Equipment{EquipID: "e2", Name: "精简束带", BindType: equipment.BindOnPickup}, true
	default:
		return equipment.Equipment{}, false
	}
}

func TestBuildDashboardAdditivity(t *testing.T) {
	raids := []record.RaidRecord{
		{AccountID: "own-1", GoldIncome: 1000},
		{AccountID: "own-1", GoldIncome: 2000},
		{AccountID: "own-1", GoldIncome: 0},
	}
	baizhan := []record.BaizhanRecord{
		{AccountID: "own-1", GoldIncome: 500},
		{AccountID: "own-1", GoldIncome: 0},
	}

	d := BuildDashboard(raids, baizhan, nil, testAccounts(), testLookup)
	if d.TotalGold != 3500 {
		t.Errorf("TotalGold = %d, want 3500", d.TotalGold)
	}
	if d.TotalRaids != 3 {
		t.Errorf("TotalRaids = %d, want 3", d.TotalRaids)
	}
}

func TestBuildDashboardZeroDivision(t *testing.T) {
	d := BuildDashboard(nil, nil, nil, nil, nil)
	if d.DropRate != 0 {
		t.Errorf("没有记录时DropRate应为0, got %f", d.DropRate)
	}
	if d.TotalGold != 0 || d.XuanjingCount != 0 || d.EquipCount != 0 {
		t.Errorf("空输入应产出全零统计: %+v", d)
	}
}

func TestBuildDashboardDropRate(t *testing.T) {
	raids := []record.RaidRecord{
		{AccountID: "own-1", HasXuanjing: true},
		{AccountID: "own-1"},
		{AccountID: "own-1"},
		{AccountID: "own-1"},
	}
	d := BuildDashboard(raids, nil, nil, testAccounts(), testLookup)
	if d.XuanjingCount != 1 {
		t.Errorf("XuanjingCount = %d, want 1", d.XuanjingCount)
	}
	if d.DropRate != 25 {
		t.Errorf("DropRate = %f, want 25", d.DropRate)
	}
}

func TestClientIncomeClassification(t *testing.T) {
	raids := []record.RaidRecord{
		{AccountID: "own-1", GoldIncome: 1000},
		{AccountID: "client-1", GoldIncome: 300},
		// 禁用的代清账号不计入代清收入
		{AccountID: "client-off", GoldIncome: 999},
	}
	baizhan := []record.BaizhanRecord{
		{AccountID: "client-1", GoldIncome: 200},
	}

	d := BuildDashboard(raids, baizhan, nil, testAccounts(), testLookup)
	if d.ClientIncome != 500 {
		t.Errorf("ClientIncome = %d, want 500", d.ClientIncome)
	}
}

func TestCountTradableFlips(t *testing.T) {
	trials := []record.TrialRecord{
		{Card1: "e1", FlippedIndex: 1},      // 可交易，计数
		{Card1: "e2", FlippedIndex: 1},      // 拾取绑定，不计
		{Card1: "missing", FlippedIndex: 1}, // 查不到装备，不计
		{FlippedIndex: 2},                   // 翻开的卡没有装备
	}

	if got := CountTradableFlips(trials, testLookup); got != 1 {
		t.Errorf("CountTradableFlips = %d, want 1", got)
	}
	if got := CountTradableFlips(trials, nil); got != 0 {
		t.Errorf("没有装备表时应为0, got %d", got)
	}
}

func TestSummarizeIncome(t *testing.T) {
	raids := []record.RaidRecord{
		{AccountID: "own-1", GoldIncome: 1000, GoldExpense: 300, HasXuanjing: true},
		{AccountID: "client-1", GoldIncome: 500, GoldExpense: 100},
	}
	baizhan := []record.BaizhanRecord{
		{AccountID: "own-1", GoldIncome: 200},
	}

	s := SummarizeIncome(raids, baizhan, testAccounts())
	if s.TotalIncome != 1700 {
		t.Errorf("TotalIncome = %d, want 1700", s.TotalIncome)
	}
	if s.TotalExpense != 400 {
		t.Errorf("TotalExpense = %d, want 400", s.TotalExpense)
	}
	if s.NetIncome != 1300 {
		t.Errorf("NetIncome = %d, want 1300", s.NetIncome)
	}
	if s.ClientIncome != 500 || s.ClientExpense != 100 {
		t.Errorf("代清收支 = (%d, %d), want (500, 100)", s.ClientIncome, s.ClientExpense)
	}
	if s.XuanjingCount != 1 {
		t.Errorf("XuanjingCount = %d, want 1", s.XuanjingCount)
	}
}

func TestLuckiestRole(t *testing.T) {
	raids := []record.RaidRecord{
		{AccountID: "own-1", RoleID: "r1", RoleName: "甲", Server: "梦江南", GoldIncome: 1000, HasXuanjing: true},
		{AccountID: "own-1", RoleID: "r2", RoleName: "乙", Server: "梦江南", GoldIncome: 3000},
		{AccountID: "own-1", RoleID: "r1", RoleName: "甲", Server: "梦江南", GoldIncome: 1500},
	}

	lucky := LuckiestRole(raids, nil)
	if lucky.RoleName != "乙" || lucky.TotalGold != 3000 {
		t.Errorf("got %+v, want 乙/3000", lucky)
	}
}

func TestLuckiestRoleAccountIDFallback(t *testing.T) {
	// roleId缺失的记录按accountId归并为一组
	raids := []record.RaidRecord{
		{AccountID: "own-1", GoldIncome: 100},
		{AccountID: "own-1", GoldIncome: 200},
	}

	lucky := LuckiestRole(raids, nil)
	if lucky.TotalGold != 300 {
		t.Errorf("TotalGold = %d, want 300（两条记录应归并）", lucky.TotalGold)
	}
	if lucky.RoleName != "未知角色" || lucky.Server != "未知服务器" {
		t.Errorf("缺失快照应使用兜底文案: %+v", lucky)
	}
}

func TestLuckiestRoleTieFirstSeenWins(t *testing.T) {
	raids := []record.RaidRecord{
		{RoleID: "r1", RoleName: "先来", GoldIncome: 1000},
		{RoleID: "r2", RoleName: "后到", GoldIncome: 1000},
	}
	lucky := LuckiestRole(raids, nil)
	if lucky.RoleName != "先来" {
		t.Errorf("并列时先出现者胜出, got %s", lucky.RoleName)
	}
}

func TestLuckiestRoleAllZeroIncome(t *testing.T) {
	// 有记录但全零收入时不该退回占位行，先出现的角色胜出
	raids := []record.RaidRecord{
		{RoleID: "r1", RoleName: "空军甲", Server: "梦江南"},
		{RoleID: "r2", RoleName: "空军乙", Server: "梦江南"},
	}
	lucky := LuckiestRole(raids, nil)
	if lucky.RoleName != "空军甲" || lucky.TotalGold != 0 {
		t.Errorf("got %+v, want 空军甲/0", lucky)
	}
}

func TestLuckiestRoleEmpty(t *testing.T) {
	lucky := LuckiestRole(nil, nil)
	if lucky.RoleName != "暂无数据" {
		t.Errorf("空输入应返回占位行, got %+v", lucky)
	}
}

func TestBiggestSpenderOwnOnly(t *testing.T) {
	raids := []record.RaidRecord{
		{AccountID: "own-1", RoleID: "r1", RoleName: "剁手王", GoldExpense: 5000},
		// 代清账号的支出不参与排榜
		{AccountID: "client-1", RoleID: "r9", RoleName: "打工人", GoldExpense: 99999},
		// 零支出不入组
		{AccountID: "own-1", RoleID: "r2", RoleName: "零元购"},
	}

	spender := BiggestSpender(raids, nil, testAccounts())
	if spender.RoleName != "剁手王" || spender.TotalExpense != 5000 {
		t.Errorf("got %+v, want 剁手王/5000", spender)
	}
}

func TestGoldHistogram(t *testing.T) {
	raids := []record.RaidRecord{
		{RaidName: "太极宫", GoldIncome: 1000},
		{RaidName: "弓月城", GoldIncome: 500},
		{RaidName: "太极宫", GoldIncome: 200},
	}
	baizhan := []record.BaizhanRecord{
		{GoldIncome: 100},
		{GoldIncome: 50},
	}

	buckets := GoldHistogram(raids, baizhan)
	if len(buckets) != 3 {
		t.Fatalf("期望3个桶, got %d", len(buckets))
	}

	totals := make(map[string]int64)
	for _, b := range buckets {
		totals[b.Name] = b.Value
	}
	if totals["太极宫"] != 1200 {
		t.Errorf("太极宫 = %d, want 1200", totals["太极宫"])
	}
	if totals[BaizhanBucketName] != 150 {
		t.Errorf("百战桶 = %d, want 150", totals[BaizhanBucketName])
	}
}

func TestFilterByWindow(t *testing.T) {
	start := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)
	before := record.FlexTime(start.UnixMilli() - 1)
	after := record.FlexTime(start.UnixMilli() + 1)

	raids := FilterRaidByWindow([]record.RaidRecord{
		{RecordID: "old", Date: before},
		{RecordID: "new", Date: after},
	}, start)

	if len(raids) != 1 || raids[0].RecordID != "new" {
		t.Errorf("窗口过滤错误: %+v", raids)
	}
}
