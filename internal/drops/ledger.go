package drops

import (
	"fmt"
	"sort"

	"github.com/jx3tools/jx3-tracker-backend/internal/account"
	"github.com/jx3tools/jx3-tracker-backend/internal/equipment"
	"github.com/jx3tools/jx3-tracker-backend/internal/record"
)

// 掉落事件类型
const (
	EventXuanjing  = "玄晶"
	EventTradeable = "可交易装备"
)

// 角色信息兜底文案
const (
	unknownRoleName = "未知角色"
	unknownServer   = "未知服务器"
)

// EquipmentInfo 是掉落装备的展示摘要
type EquipmentInfo struct {
	Name       string                         `json:"name"`
	Level      int                            `json:"level"`
	Attributes []equipment.FormattedAttribute `json:"attributes"`
}

// Event 是账本上的一条掉落事件
type Event struct {
	Type        string          `json:"type"`
	Date        record.FlexTime `json:"date"`
	Description string          `json:"description"`
	Notes       string          `json:"notes,omitempty"`
	Equipment   *EquipmentInfo  `json:"equipment,omitempty"`
}

// Group 是某个角色的掉落汇总
type Group struct {
	RoleID   string  `json:"roleId"`
	RoleName string  `json:"roleName"`
	Server   string  `json:"server"`
	Count    int     `json:"count"`
	Events   []Event `json:"events"`
}

// Options 控制账本的组内排序
type Options struct {
	// EventsDateDesc 为true时组内事件按日期降序（默认保持输入顺序）
	EventsDateDesc bool
}

// BuildLedger 汇总稀有掉落账本：
// 出玄晶的副本记录和翻出可交易装备的试炼记录合并为统一事件流，
// 按角色分组，角色数多的组排前面。
func BuildLedger(
	raids []record.RaidRecord,
	trials []record.TrialRecord,
	accounts []account.Account,
	lookup equipment.Lookup,
	opts Options,
) []Group {
	groups := make(map[string]*Group)
	var order []string

	appendEvent := func(accountID, roleID, snapName, snapServer string, ev Event) {
		key := roleID
		if key == "" {
			key = accountID
		}

		g, ok := groups[key]
		if !ok {
			name, server := resolveRole(accounts, accountID, roleID, snapName, snapServer)
			g = &Group{RoleID: key, RoleName: name, Server: server}
			groups[key] = g
			order = append(order, key)
		}
		g.Events = append(g.Events, ev)
		g.Count++
	}

	for i := range raids {
		r := &raids[i]
		if !r.HasXuanjing {
			continue
		}
		appendEvent(r.AccountID, r.RoleID, r.RoleName, r.Server, Event{
			Type:        EventXuanjing,
			Date:        r.Date,
			Description: r.RaidName,
			Notes:       r.Notes,
		})
	}

	for i := range trials {
		t := &trials[i]
		id := t.FlippedEquipID()
		if id == "" || lookup == nil {
			continue
		}
		e, ok := lookup(id)
		if !ok || !e.IsTradable() {
			continue
		}
		appendEvent(t.AccountID, t.RoleID, t.RoleName, t.Server, Event{
			Type:        EventTradeable,
			Date:        t.Date,
			Description: fmt.Sprintf("试炼之地·第%d层", t.Layer),
			Notes:       t.Notes,
			Equipment: &EquipmentInfo{
				Name:       e.Name,
				Level:      e.Level,
				Attributes: equipment.FormatAttributes(e),
			},
		})
	}

	result := make([]Group, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if opts.EventsDateDesc {
			sort.SliceStable(g.Events, func(i, j int) bool {
				return g.Events[i].Date > g.Events[j].Date
			})
		}
		result = append(result, *g)
	}

	// 稳定排序保证并列组维持首次出现顺序
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// resolveRole 解析角色展示信息：当前花名册优先，
// 查不到用记录上的快照，再兜底占位文案。
func resolveRole(accounts []account.Account, accountID, roleID, snapName, snapServer string) (string, string) {
	if roleID != "" {
		if name, server, found := account.FindRoleByID(accounts, roleID); found {
			return name, server
		}
	}

	name := snapName
	if name == "" {
		name = unknownRoleName
	}
	server := snapServer
	if server == "" {
		server = unknownServer
	}
	return name, server
}
