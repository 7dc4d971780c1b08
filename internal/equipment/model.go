package equipment

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// BindType 交易限制代码
const (
	// BindNone 不绑定，可自由交易
	BindNone = 1
	// BindOnEquip 装备后绑定，掉落时可交易
	BindOnEquip = 2
	// BindOnPickup 拾取后绑定，不可交易
	BindOnPickup = 3
)

// Attribute 是装备的一条属性词条（来自jx3box原始数据）
type Attribute struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Color string `json:"color"`
	Value string `json:"value"`
}

// AttributeList 是以JSON文本存储的属性词条列
type AttributeList []Attribute

func (l AttributeList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *AttributeList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("无法将 %T 扫描为 AttributeList", value)
	}
}

// StringMap 是以JSON文本存储的字符串映射列（属性类型名表）
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *StringMap) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("无法将 %T 扫描为 StringMap", value)
	}
}

// Equipment 是装备目录里的一件装备，数据来自jx3box，本地落库作为查询源
type Equipment struct {
	gorm.Model

	// EquipID 是装备在游戏数据里的唯一ID（字符串形态的SourceID）
	EquipID string `gorm:"uniqueIndex;not null" json:"id"`

	Name    string `json:"name"`
	UiID    string `json:"uiId"`
	IconID  int    `json:"iconId"`
	Level   int    `json:"level"`
	Quality string `json:"quality"`

	// BindType 交易限制：1不绑定 2装备后绑定 3拾取后绑定
	BindType int `json:"bindType"`

	Attributes     AttributeList `gorm:"type:text" json:"attributes"`
	AttributeTypes StringMap     `gorm:"type:text" json:"attributeTypes"`
}

// IsTradable 判断该装备掉落时是否可交易（不绑定或装备后绑定）
func (e *Equipment) IsTradable() bool {
	return e.BindType == BindNone || e.BindType == BindOnEquip
}

// BindTypeLabel 返回交易限制的中文文案，未知代码返回空串
func (e *Equipment) BindTypeLabel() string {
	switch e.BindType {
	case BindNone:
		return "不绑定"
	case BindOnEquip:
		return "装备后绑定"
	case BindOnPickup:
		return "拾取后绑定"
	default:
		return ""
	}
}

// Lookup 是装备查询函数签名，纯计算模块通过它解析卡面装备，
// 不直接依赖存储层。
type Lookup func(equipID string) (Equipment, bool)
