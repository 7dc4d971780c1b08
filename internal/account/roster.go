package account

// 活动分类key，对应Role.Visibility里的配置项
const (
	ActivityRaid    = "raid"
	ActivityBaizhan = "baizhan"
	ActivityTrial   = "trial"
)

// FlatRole 是展开后的角色卡片：角色自身字段加上父账号的展示信息。
type FlatRole struct {
	RoleID         string `json:"id"`
	Name           string `json:"name"`
	Server         string `json:"server"`
	Region         string `json:"region"`
	Sect           string `json:"sect"`
	IsClient       bool   `json:"isClient"`
	EquipmentScore int    `json:"equipmentScore"`

	AccountID   string `json:"accountId"`
	AccountName string `json:"accountName"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

// FlattenOptions 控制展开时的过滤行为
type FlattenOptions struct {
	// ExcludeClient 为true时剔除代清角色（百战/试炼看板用）
	ExcludeClient bool
	// Activity 非空时，Visibility里显式关闭了该分类的角色会被剔除
	Activity string
}

// FlattenRoles 把 账号→角色 的层级展开为扁平的角色卡片列表。
// 禁用的账号（连同其全部角色）和禁用的角色被剔除；
// 输出顺序跟随输入的账号序、角色序，不在这里排序。
// 输入为nil时返回空列表，绝不panic。
func FlattenRoles(accounts []Account, opts FlattenOptions) []FlatRole {
	result := make([]FlatRole, 0)
	for _, acc := range accounts {
		if acc.Disabled {
			continue
		}
		for _, role := range acc.Roles {
			if role.Disabled {
				continue
			}
			if opts.ExcludeClient && role.IsClient {
				continue
			}
			if opts.Activity != "" && role.Visibility != nil {
				// 只有显式配置为false才剔除，缺省视为可见
				if visible, ok := role.Visibility[opts.Activity]; ok && !visible {
					continue
				}
			}
			result = append(result, FlatRole{
				RoleID:         role.RoleID,
				Name:           role.Name,
				Server:         role.Server,
				Region:         role.Region,
				Sect:           role.Sect,
				IsClient:       role.IsClient,
				EquipmentScore: role.EquipmentScore,
				AccountID:      acc.AccountID,
				AccountName:    acc.AccountName,
				Username:       acc.Username,
				Password:       acc.Password,
			})
		}
	}
	return result
}

// FindRoleInfo 在账号列表中按 accountId+roleId 查找角色的展示信息。
// 找不到时返回两个空串，由调用方决定兜底文案。
func FindRoleInfo(accounts []Account, accountID, roleID string) (roleName, server string) {
	for _, acc := range accounts {
		if acc.AccountID != accountID {
			continue
		}
		for _, role := range acc.Roles {
			if role.RoleID == roleID {
				return role.Name, role.Region + " " + role.Server
			}
		}
	}
	return "", ""
}

// FindRoleByID 只按roleId在全部账号中扫描角色。
// 掉落账本里角色可能已不在当前花名册上，这是第一级兜底。
func FindRoleByID(accounts []Account, roleID string) (roleName, server string, found bool) {
	for _, acc := range accounts {
		for _, role := range acc.Roles {
			if role.RoleID == roleID {
				return role.Name, role.Region + " " + role.Server, true
			}
		}
	}
	return "", "", false
}

// ClientAccountIDs 返回未禁用的代清账号ID集合
func ClientAccountIDs(accounts []Account) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, acc := range accounts {
		if acc.Type == TypeClient && !acc.Disabled {
			ids[acc.AccountID] = struct{}{}
		}
	}
	return ids
}

// OwnAccountIDs 返回未禁用的自有账号ID集合
func OwnAccountIDs(accounts []Account) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, acc := range accounts {
		if acc.Type == TypeOwn && !acc.Disabled {
			ids[acc.AccountID] = struct{}{}
		}
	}
	return ids
}
