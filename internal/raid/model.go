package raid

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// 副本难度
const (
	DifficultyNormal    = "普通"
	DifficultyHeroic    = "英雄"
	DifficultyChallenge = "挑战"
)

// Boss 是副本BOSS配置里的一项
type Boss struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// BossList 是以JSON文本存储的BOSS配置列
type BossList []Boss

func (l BossList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *BossList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("BossList只支持从文本列扫描")
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// Raid 是一个可追踪CD的副本条目。
// 同一副本的不同难度/人数是各自独立的条目，CD互不影响。
type Raid struct {
	gorm.Model

	RaidID string `gorm:"uniqueIndex;not null" json:"id"`

	Name       string `gorm:"index" json:"name"`
	Difficulty string `json:"difficulty"`
	// PlayerCount 10人本走半周CD，25人本走整周CD
	PlayerCount int    `json:"playerCount"`
	Level       int    `json:"level"`
	Version     string `json:"version"`

	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`

	Bosses BossList `gorm:"type:text" json:"bosses"`
}

// IsTenPerson 判断是否为10人本
func (r *Raid) IsTenPerson() bool {
	return r.PlayerCount == 10
}

// defaultBosses 按副本名称索引的默认BOSS配置，所有难度共享
var defaultBosses = map[string][]Boss{
	"弓月城": {
		{ID: "gongyuecheng_1", Name: "巴图仁钦", Order: 1},
		{ID: "gongyuecheng_2", Name: "竭勒", Order: 2},
		{ID: "gongyuecheng_3", Name: "图南子", Order: 3},
		{ID: "gongyuecheng_4", Name: "叶葵", Order: 4},
		{ID: "gongyuecheng_5", Name: "尹雪尘", Order: 5},
	},
	"缚罪之渊": {
		{ID: "fuzuizhiyuan_1", Name: "阿里曼幻身", Order: 1},
		{ID: "fuzuizhiyuan_2", Name: "阿萨辛", Order: 2},
	},
}

// TrackedBosses 返回该副本参与CD追踪的BOSS列表。
// 副本自身没有配置时回落到按名称索引的默认配置。
func (r *Raid) TrackedBosses() []Boss {
	if len(r.Bosses) > 0 {
		return r.Bosses
	}
	return defaultBosses[r.Name]
}

// HasBossTracking 判断该副本是否启用按BOSS记录CD
func (r *Raid) HasBossTracking() bool {
	return len(r.TrackedBosses()) > 0
}

// MakeRaidID 生成副本条目的业务主键，同名不同难度/人数互不冲突
func MakeRaidID(name string, playerCount int, difficulty string) string {
	return fmt.Sprintf("%s-%d-%s", name, playerCount, difficulty)
}
