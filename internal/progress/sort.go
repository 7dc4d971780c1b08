package progress

import (
	"sort"

	"github.com/jx3tools/jx3-tracker-backend/internal/account"
	"github.com/jx3tools/jx3-tracker-backend/pkg/chinese"
)

// RosterEntry 是进度看板上的一行：角色卡片加本周进度
type RosterEntry struct {
	account.FlatRole

	Status      Status `json:"status"`
	StatusLabel string `json:"statusLabel"`
	// LastRunMillis 为0表示从未挑战
	LastRunMillis int64 `json:"lastRun"`

	// 看板附加列
	WeeklyCount  int   `json:"weeklyCount"`
	WeeklyCap    int   `json:"weeklyCap"`
	MaxLayer     int   `json:"maxLayer,omitempty"`
	WeeklyIncome int64 `json:"weeklyIncome,omitempty"`
}

// SortRoster 对看板排序：待打的排前面，同状态按装分降序，
// 再按最近挑战时间降序，同分同时间按服务器、角色名中文序兜底。
// 五个key合起来构成全序，同一输入排序结果稳定。
func SortRoster(entries []RosterEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := &entries[i], &entries[j]

		if a.Status != b.Status {
			return a.Status < b.Status
		}
		if a.EquipmentScore != b.EquipmentScore {
			return a.EquipmentScore > b.EquipmentScore
		}
		if a.LastRunMillis != b.LastRunMillis {
			return a.LastRunMillis > b.LastRunMillis
		}
		if c := chinese.Compare(a.Server, b.Server); c != 0 {
			return c < 0
		}
		return chinese.Compare(a.Name, b.Name) < 0
	})
}
