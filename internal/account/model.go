package account

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// AccountType 区分自己的账号和代清账号
type AccountType string

const (
	// TypeOwn 是玩家自己的账号
	TypeOwn AccountType = "OWN"
	// TypeClient 是代清（帮他人打本收费）账号，收益单独统计
	TypeClient AccountType = "CLIENT"
)

// BoolMap 是以JSON文本存储的开关映射列（角色的分类可见性配置）
type BoolMap map[string]bool

func (m BoolMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *BoolMap) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("无法将 %T 扫描为 BoolMap", value)
	}
}

// Account 是一个游戏账号，下挂若干角色。
// 禁用账号会把它的所有角色从一切聚合中移除，但不删除历史记录。
type Account struct {
	gorm.Model

	AccountID   string      `gorm:"uniqueIndex;not null" json:"id"`
	AccountName string      `json:"accountName"`
	Username    string      `json:"username"`
	Password    string      `json:"password"`
	Type        AccountType `json:"type"`
	Notes       string      `json:"notes"`
	Hidden      bool        `json:"hidden"`
	Disabled    bool        `json:"disabled"`

	Roles []Role `gorm:"foreignKey:AccountRef;references:AccountID" json:"roles"`
}

// Role 是账号下的一个游戏角色。
// 参与任何聚合的前提：所属账号未禁用且角色自身未禁用。
type Role struct {
	gorm.Model

	RoleID     string `gorm:"uniqueIndex;not null" json:"id"`
	AccountRef string `gorm:"index" json:"-"`

	Name   string `json:"name"`
	Server string `json:"server"`
	Region string `json:"region"`
	Sect   string `json:"sect"`

	// IsClient 标记代清角色，周进度和百战/试炼聚合会排除它
	IsClient bool `json:"isClient"`
	Disabled bool `json:"disabled"`

	EquipmentScore int `json:"equipmentScore"`

	// Visibility 是分类可见性配置，例如 {"raid": true, "baizhan": false}
	// 某个分类显式为false时，该角色不出现在对应的进度看板里
	Visibility BoolMap `gorm:"type:text" json:"visibility"`
}
