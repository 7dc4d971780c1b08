package stats

import (
	"time"

	"github.com/jx3tools/jx3-tracker-backend/internal/account"
	"github.com/jx3tools/jx3-tracker-backend/internal/equipment"
	"github.com/jx3tools/jx3-tracker-backend/internal/gametime"
	"github.com/jx3tools/jx3-tracker-backend/internal/record"
)

// BaizhanBucketName 金币分布图里百战收入统一落入的桶
const BaizhanBucketName = "百战异闻录"

// 兜底展示文案
const (
	unknownRoleName = "未知角色"
	unknownServer   = "未知服务器"
	noDataName      = "暂无数据"
)

// FilterRaidByWindow 按统计窗口过滤副本记录（含下界）
func FilterRaidByWindow(records []record.RaidRecord, start time.Time) []record.RaidRecord {
	filtered := make([]record.RaidRecord, 0, len(records))
	for _, r := range records {
		if gametime.InWindow(r.Date.Millis(), start) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterBaizhanByWindow 按统计窗口过滤百战记录
func FilterBaizhanByWindow(records []record.BaizhanRecord, start time.Time) []record.BaizhanRecord {
	filtered := make([]record.BaizhanRecord, 0, len(records))
	for _, r := range records {
		if gametime.InWindow(r.Date.Millis(), start) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterTrialByWindow 按统计窗口过滤试炼记录
func FilterTrialByWindow(records []record.TrialRecord, start time.Time) []record.TrialRecord {
	filtered := make([]record.TrialRecord, 0, len(records))
	for _, r := range records {
		if gametime.InWindow(r.Date.Millis(), start) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Dashboard 是数据概览页的聚合结果
type Dashboard struct {
	TotalGold     int64   `json:"totalGold"`
	TotalRaids    int     `json:"totalRaids"`
	XuanjingCount int     `json:"xuanjingCount"`
	DropRate      float64 `json:"dropRate"`
	ClientIncome  int64   `json:"clientIncome"`
	EquipCount    int     `json:"equipCount"`
}

// BuildDashboard 计算概览统计。
// 入参应当已按统计窗口过滤；nil切片等价于空数据，产出全零统计。
func BuildDashboard(
	raids []record.RaidRecord,
	baizhan []record.BaizhanRecord,
	trials []record.TrialRecord,
	accounts []account.Account,
	lookup equipment.Lookup,
) Dashboard {
	var d Dashboard

	clientIDs := account.ClientAccountIDs(accounts)

	for _, r := range raids {
		d.TotalGold += int64(r.GoldIncome)
		if r.HasXuanjing {
			d.XuanjingCount++
		}
		if _, ok := clientIDs[r.AccountID]; ok {
			d.ClientIncome += int64(r.GoldIncome)
		}
	}
	d.TotalRaids = len(raids)
	if len(raids) > 0 {
		d.DropRate = float64(d.XuanjingCount) / float64(len(raids)) * 100
	}

	for _, r := range baizhan {
		d.TotalGold += int64(r.GoldIncome)
		if _, ok := clientIDs[r.AccountID]; ok {
			d.ClientIncome += int64(r.GoldIncome)
		}
	}

	d.EquipCount = CountTradableFlips(trials, lookup)
	return d
}

// CountTradableFlips 统计翻出可交易装备的试炼次数。
// 翻开的卡查不到装备时不计数。
func CountTradableFlips(trials []record.TrialRecord, lookup equipment.Lookup) int {
	if lookup == nil {
		return 0
	}
	count := 0
	for i := range trials {
		id := trials[i].FlippedEquipID()
		if id == "" {
			continue
		}
		e, ok := lookup(id)
		if !ok {
			continue
		}
		if e.IsTradable() {
			count++
		}
	}
	return count
}

// IncomeSummary 是收支明细页的汇总
type IncomeSummary struct {
	TotalIncome   int64 `json:"totalIncome"`
	TotalExpense  int64 `json:"totalExpense"`
	NetIncome     int64 `json:"netIncome"`
	XuanjingCount int   `json:"xuanjingCount"`
	ClientIncome  int64 `json:"clientIncome"`
	ClientExpense int64 `json:"clientExpense"`
}

// SummarizeIncome 汇总收支，代清账号的收支单列
func SummarizeIncome(raids []record.RaidRecord, baizhan []record.BaizhanRecord, accounts []account.Account) IncomeSummary {
	var s IncomeSummary
	clientIDs := account.ClientAccountIDs(accounts)

	for _, r := range raids {
		s.TotalIncome += int64(r.GoldIncome)
		s.TotalExpense += int64(r.GoldExpense)
		if r.HasXuanjing {
			s.XuanjingCount++
		}
		if _, ok := clientIDs[r.AccountID]; ok {
			s.ClientIncome += int64(r.GoldIncome)
			s.ClientExpense += int64(r.GoldExpense)
		}
	}
	for _, r := range baizhan {
		s.TotalIncome += int64(r.GoldIncome)
		s.TotalExpense += int64(r.GoldExpense)
		if _, ok := clientIDs[r.AccountID]; ok {
			s.ClientIncome += int64(r.GoldIncome)
			s.ClientExpense += int64(r.GoldExpense)
		}
	}

	s.NetIncome = s.TotalIncome - s.TotalExpense
	return s
}

// RoleIncome 是收入榜上的一行
type RoleIncome struct {
	RoleName      string `json:"roleName"`
	Server        string `json:"server"`
	TotalGold     int64  `json:"totalGold"`
	XuanjingCount int    `json:"xuanjingCount"`
}

// incomeEvent 统一副本/百战收入事件，供分组归并
type incomeEvent struct {
	accountID   string
	roleID      string
	roleName    string
	server      string
	goldIncome  int64
	goldExpense int64
	hasXuanjing bool
}

func collectIncomeEvents(raids []record.RaidRecord, baizhan []record.BaizhanRecord) []incomeEvent {
	events := make([]incomeEvent, 0, len(raids)+len(baizhan))
	for _, r := range raids {
		events = append(events, incomeEvent{
			accountID:   r.AccountID,
			roleID:      r.RoleID,
			roleName:    r.RoleName,
			server:      r.Server,
			goldIncome:  int64(r.GoldIncome),
			goldExpense: int64(r.GoldExpense),
			hasXuanjing: r.HasXuanjing,
		})
	}
	for _, r := range baizhan {
		events = append(events, incomeEvent{
			accountID:   r.AccountID,
			roleID:      r.RoleID,
			roleName:    r.RoleName,
			server:      r.Server,
			goldIncome:  int64(r.GoldIncome),
			goldExpense: int64(r.GoldExpense),
		})
	}
	return events
}

// groupKey 角色ID缺失时退用账号ID分组
func (e *incomeEvent) groupKey() string {
	if e.roleID != "" {
		return e.roleID
	}
	return e.accountID
}

// LuckiestRole 找出窗口内总收入最高的角色。
// 并列时先出现的胜出，入参顺序确定则结果确定。没有记录时返回"暂无数据"占位。
func LuckiestRole(raids []record.RaidRecord, baizhan []record.BaizhanRecord) RoleIncome {
	type bucket struct {
		RoleIncome
	}
	groups := make(map[string]*bucket)
	var order []string

	for _, e := range collectIncomeEvents(raids, baizhan) {
		key := e.groupKey()
		g, ok := groups[key]
		if !ok {
			name := e.roleName
			if name == "" {
				name = unknownRoleName
			}
			server := e.server
			if server == "" {
				server = unknownServer
			}
			g = &bucket{RoleIncome{RoleName: name, Server: server}}
			groups[key] = g
			order = append(order, key)
		}
		g.TotalGold += e.goldIncome
		if e.hasXuanjing {
			g.XuanjingCount++
		}
	}

	if len(order) == 0 {
		return RoleIncome{RoleName: noDataName}
	}
	// 以首个分组起评，全零收入时也有胜者（先出现者）
	winner := groups[order[0]].RoleIncome
	for _, key := range order[1:] {
		if groups[key].TotalGold > winner.TotalGold {
			winner = groups[key].RoleIncome
		}
	}
	return winner
}

// RoleExpense 是支出榜上的一行
type RoleExpense struct {
	RoleName     string `json:"roleName"`
	Server       string `json:"server"`
	TotalExpense int64  `json:"totalExpense"`
}

// BiggestSpender 找出窗口内支出最高的自有账号角色。
// 代清账号的支出不参与排榜。
func BiggestSpender(raids []record.RaidRecord, baizhan []record.BaizhanRecord, accounts []account.Account) RoleExpense {
	ownIDs := account.OwnAccountIDs(accounts)

	type bucket struct {
		RoleExpense
	}
	groups := make(map[string]*bucket)
	var order []string

	for _, e := range collectIncomeEvents(raids, baizhan) {
		if _, ok := ownIDs[e.accountID]; !ok {
			continue
		}
		if e.goldExpense <= 0 {
			continue
		}
		key := e.groupKey()
		g, ok := groups[key]
		if !ok {
			name := e.roleName
			if name == "" {
				name = unknownRoleName
			}
			server := e.server
			if server == "" {
				server = unknownServer
			}
			g = &bucket{RoleExpense{RoleName: name, Server: server}}
			groups[key] = g
			order = append(order, key)
		}
		g.TotalExpense += e.goldExpense
	}

	winner := RoleExpense{RoleName: noDataName}
	for _, key := range order {
		if groups[key].TotalExpense > winner.TotalExpense {
			winner = groups[key].RoleExpense
		}
	}
	return winner
}

// HistogramBucket 是金币分布图上的一个柱
type HistogramBucket struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// GoldHistogram 按副本名聚合收入，百战收入统一落入固定桶。
// 桶顺序按首次出现顺序输出。
func GoldHistogram(raids []record.RaidRecord, baizhan []record.BaizhanRecord) []HistogramBucket {
	totals := make(map[string]int64)
	var order []string

	add := func(name string, value int64) {
		if _, ok := totals[name]; !ok {
			order = append(order, name)
		}
		totals[name] += value
	}

	for _, r := range raids {
		add(r.RaidName, int64(r.GoldIncome))
	}
	for _, r := range baizhan {
		add(BaizhanBucketName, int64(r.GoldIncome))
	}

	buckets := make([]HistogramBucket, 0, len(order))
	for _, name := range order {
		buckets = append(buckets, HistogramBucket{Name: name, Value: totals[name]})
	}
	return buckets
}
