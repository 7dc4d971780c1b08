package account

import (
	"sort"

	"github.com/jx3tools/jx3-tracker-backend/pkg/chinese"
)

// SortAccounts 返回排序后的账号列表副本：启用的在前，禁用的在后，
// 同状态按账号名中文序；每个账号内的角色也做同样的整理。
func SortAccounts(accounts []Account) []Account {
	sorted := make([]Account, len(accounts))
	copy(sorted, accounts)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Disabled != sorted[j].Disabled {
			return !sorted[i].Disabled
		}
		return chinese.Compare(sorted[i].AccountName, sorted[j].AccountName) < 0
	})

	for i := range sorted {
		sorted[i].Roles = SortRoles(sorted[i].Roles)
	}
	return sorted
}

// configScore 衡量角色的配置完整度：门派和装分都填了计2，填了其一计1
func configScore(r Role) int {
	score := 0
	if r.Sect != "" {
		score++
	}
	if r.EquipmentScore > 0 {
		score++
	}
	return score
}

// SortRoles 返回排序后的角色列表副本：
// 启用优先 → 配置完整度降序 → 装分降序 → 角色名中文序。
func SortRoles(roles []Role) []Role {
	sorted := make([]Role, len(roles))
	copy(sorted, roles)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Disabled != b.Disabled {
			return !a.Disabled
		}
		if ca, cb := configScore(a), configScore(b); ca != cb {
			return ca > cb
		}
		if a.EquipmentScore != b.EquipmentScore {
			return a.EquipmentScore > b.EquipmentScore
		}
		return chinese.Compare(a.Name, b.Name) < 0
	})
	return sorted
}
