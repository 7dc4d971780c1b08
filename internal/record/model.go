package record

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// StringSlice 是以JSON文本存储的字符串数组列（bossIds/bossNames等）
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *StringSlice) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("无法将 %T 扫描为 StringSlice", value)
	}
}

// IntSlice 是以JSON文本存储的整数数组列（精简卡索引等）
type IntSlice []int

func (s IntSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *IntSlice) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("无法将 %T 扫描为 IntSlice", value)
	}
}

// RaidRecord 是一条副本通关（或尝试）记录。
// raidName是落库时的快照（例如 "25人普通弓月城"），之后改名不回写；
// roleName/server同样是快照字段，保证角色被删改后历史展示不变。
type RaidRecord struct {
	gorm.Model

	RecordID  string `gorm:"uniqueIndex;not null" json:"id"`
	AccountID string `gorm:"index" json:"accountId"`
	RoleID    string `gorm:"index" json:"roleId"`

	RaidName string   `json:"raidName"`
	Date     FlexTime `gorm:"index" json:"date"`

	GoldIncome  int `json:"goldIncome"`
	GoldExpense int `json:"goldExpense"`

	// 稀有掉落标记
	HasXuanjing   bool `json:"hasXuanjing"`
	HasMount      bool `json:"hasMount"`
	HasPet        bool `json:"hasPet"`
	HasPendant    bool `json:"hasPendant"`
	HasTitle      bool `json:"hasTitle"`
	HasAppearance bool `json:"hasAppearance"`
	HasMaJu       bool `json:"hasMaJu"`
	HasSecretBook bool `json:"hasSecretBook"`

	Notes string `json:"notes"`

	// 历史展示快照
	RoleName string `json:"roleName"`
	Server   string `json:"server"`

	// BOSS进度（25人本可多选）
	BossID    string      `json:"bossId"`
	BossName  string      `json:"bossName"`
	BossIDs   StringSlice `gorm:"type:text" json:"bossIds"`
	BossNames StringSlice `gorm:"type:text" json:"bossNames"`
}

// KilledBossIDs 返回本条记录击杀的BOSS集合（兼容单选老数据）
func (r *RaidRecord) KilledBossIDs() []string {
	if len(r.BossIDs) > 0 {
		return r.BossIDs
	}
	if r.BossID != "" {
		return []string{r.BossID}
	}
	return nil
}

// TrialRecord 是一条试炼之地挑战记录。
// 每次挑战翻开5张卡中的1张，翻到的卡对应的装备是本次的潜在掉落。
type TrialRecord struct {
	gorm.Model

	RecordID  string `gorm:"uniqueIndex;not null" json:"id"`
	AccountID string `gorm:"index" json:"accountId"`
	RoleID    string `gorm:"index" json:"roleId"`

	RoleName string   `json:"roleName"`
	Server   string   `json:"server"`
	Date     FlexTime `gorm:"index" json:"date"`

	// Layer 是本次到达的层数 (1-100)
	Layer  int         `json:"layer"`
	Bosses StringSlice `gorm:"type:text" json:"bosses"`

	// 5张卡各自对应的装备ID（可为空字符串）
	Card1 string `json:"card1"`
	Card2 string `json:"card2"`
	Card3 string `json:"card3"`
	Card4 string `json:"card4"`
	Card5 string `json:"card5"`

	// FlippedIndex 是实际翻开的卡 (1-5)
	FlippedIndex int `json:"flippedIndex"`
	// JingJianIndices 是精简卡的下标集合
	JingJianIndices IntSlice `gorm:"type:text" json:"jingJianIndices"`

	Notes string `json:"notes"`
}

// TrialCardCount 每次试炼固定翻牌池大小
const TrialCardCount = 5

// CardAt 返回第i张卡（1-5）对应的装备ID，越界返回空串
func (t *TrialRecord) CardAt(i int) string {
	switch i {
	case 1:
		return t.Card1
	case 2:
		return t.Card2
	case 3:
		return t.Card3
	case 4:
		return t.Card4
	case 5:
		return t.Card5
	default:
		return ""
	}
}

// FlippedEquipID 返回翻开的卡对应的装备ID，没有则为空串
func (t *TrialRecord) FlippedEquipID() string {
	return t.CardAt(t.FlippedIndex)
}

// BaizhanRecord 是一条百战异闻录记录。
// 周上限1次只用于状态展示，超记不做硬性拦截。
type BaizhanRecord struct {
	gorm.Model

	RecordID  string `gorm:"uniqueIndex;not null" json:"id"`
	AccountID string `gorm:"index" json:"accountId"`
	RoleID    string `gorm:"index" json:"roleId"`

	RoleName string   `json:"roleName"`
	Server   string   `json:"server"`
	Date     FlexTime `gorm:"index" json:"date"`

	GoldIncome  int    `json:"goldIncome"`
	GoldExpense int    `json:"goldExpense"`
	Notes       string `json:"notes"`
}

// BossRecord 是BOSS维度的击杀记录，用于BOSS CD追踪。
type BossRecord struct {
	gorm.Model

	RecordID     string `gorm:"uniqueIndex;not null" json:"id"`
	RaidRecordID string `gorm:"index" json:"raidRecordId"`
	AccountID    string `gorm:"index" json:"accountId"`
	RoleID       string `gorm:"index" json:"roleId"`

	BossID   string   `json:"bossId"`
	BossName string   `json:"bossName"`
	Date     FlexTime `gorm:"index" json:"date"`

	BossIDs   StringSlice `gorm:"type:text" json:"bossIds"`
	BossNames StringSlice `gorm:"type:text" json:"bossNames"`
}

// KilledBossIDs 返回本条记录击杀的BOSS集合（兼容单选老数据）
func (r *BossRecord) KilledBossIDs() []string {
	if len(r.BossIDs) > 0 {
		return r.BossIDs
	}
	if r.BossID != "" {
		return []string{r.BossID}
	}
	return nil
}
