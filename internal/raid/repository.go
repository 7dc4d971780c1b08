package raid

import (
	"github.com/jx3tools/jx3-tracker-backend/internal/platform/database"
	"github.com/jx3tools/jx3-tracker-backend/internal/record"
)

// ListRaids 返回全部副本条目，按等级降序、名称排序
func ListRaids() ([]Raid, error) {
	var raids []Raid
	err := database.DB.Order("level desc, name asc, player_count desc").Find(&raids).Error
	return raids, err
}

// GetRaidByID 按业务主键查询副本条目
func GetRaidByID(raidID string) (*Raid, error) {
	var r Raid
	if err := database.DB.Where("raid_id = ?", raidID).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateRaid 更新副本条目（启停、BOSS配置）
func UpdateRaid(r *Raid) error {
	var existing Raid
	if err := database.DB.Where("raid_id = ?", r.RaidID).First(&existing).Error; err != nil {
		return err
	}
	r.ID = existing.ID
	r.CreatedAt = existing.CreatedAt
	return database.DB.Save(r).Error
}

// roleRaidRecords 拉取某角色在指定副本名下的全部记录
func roleRaidRecords(roleID, raidName string) ([]record.RaidRecord, error) {
	var records []record.RaidRecord
	err := database.DB.
		Where("role_id = ? AND raid_name = ?", roleID, raidName).
		Order("date asc, record_id asc").
		Find(&records).Error
	return records, err
}

// roleBossRecords 拉取某角色的全部BOSS击杀记录
func roleBossRecords(roleID string) ([]record.BossRecord, error) {
	var records []record.BossRecord
	err := database.DB.
		Where("role_id = ?", roleID).
		Order("date asc, record_id asc").
		Find(&records).Error
	return records, err
}
