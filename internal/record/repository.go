package record

import (
	"errors"
	"fmt"

	"github.com/jx3tools/jx3-tracker-backend/internal/platform/database"
	"gorm.io/gorm"
)

// 仓库层统一按 date asc, record_id asc 返回，
// 保证聚合里的"先见者优先"平手规则是确定性的。

// ListRaidRecords 返回全部副本记录
func ListRaidRecords() ([]RaidRecord, error) {
	var records []RaidRecord
	if err := database.DB.Order("date asc, record_id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("无法读取副本记录: %w", err)
	}
	return records, nil
}

// ListTrialRecords 返回全部试炼记录
func ListTrialRecords() ([]TrialRecord, error) {
	var records []TrialRecord
	if err := database.DB.Order("date asc, record_id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("无法读取试炼记录: %w", err)
	}
	return records, nil
}

// ListBaizhanRecords 返回全部百战记录
func ListBaizhanRecords() ([]BaizhanRecord, error) {
	var records []BaizhanRecord
	if err := database.DB.Order("date asc, record_id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("无法读取百战记录: %w", err)
	}
	return records, nil
}

// ListBossRecords 返回全部BOSS击杀记录
func ListBossRecords() ([]BossRecord, error) {
	var records []BossRecord
	if err := database.DB.Order("date asc, record_id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("无法读取BOSS记录: %w", err)
	}
	return records, nil
}

// CreateRaidRecord 落库一条副本记录
func CreateRaidRecord(r *RaidRecord) error {
	return database.DB.Create(r).Error
}

// UpdateRaidRecord 以record_id整条替换，保证历史不被就地篡改
func UpdateRaidRecord(r *RaidRecord) error {
	var existing RaidRecord
	err := database.DB.Where("record_id = ?", r.RecordID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("找不到ID为 %s 的副本记录", r.RecordID)
	}
	if err != nil {
		return err
	}
	r.ID = existing.ID
	r.CreatedAt = existing.CreatedAt
	return database.DB.Save(r).Error
}

// DeleteRaidRecord 按record_id删除
func DeleteRaidRecord(recordID string) error {
	return database.DB.Where("record_id = ?", recordID).Delete(&RaidRecord{}).Error
}

// CreateTrialRecord 落库一条试炼记录
func CreateTrialRecord(r *TrialRecord) error {
	return database.DB.Create(r).Error
}

// DeleteTrialRecord 按record_id删除
func DeleteTrialRecord(recordID string) error {
	return database.DB.Where("record_id = ?", recordID).Delete(&TrialRecord{}).Error
}

// CreateBaizhanRecord 落库一条百战记录
func CreateBaizhanRecord(r *BaizhanRecord) error {
	return database.DB.Create(r).Error
}

// UpdateBaizhanRecord 以record_id整条替换
func UpdateBaizhanRecord(r *BaizhanRecord) error {
	var existing BaizhanRecord
	err := database.DB.Where("record_id = ?", r.RecordID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("找不到ID为 %s 的百战记录", r.RecordID)
	}
	if err != nil {
		return err
	}
	r.ID = existing.ID
	r.CreatedAt = existing.CreatedAt
	return database.DB.Save(r).Error
}

// DeleteBaizhanRecord 按record_id删除
func DeleteBaizhanRecord(recordID string) error {
	return database.DB.Where("record_id = ?", recordID).Delete(&BaizhanRecord{}).Error
}

// CreateBossRecord 落库一条BOSS记录
func CreateBossRecord(r *BossRecord) error {
	return database.DB.Create(r).Error
}

// DeleteBossRecord 按record_id删除
func DeleteBossRecord(recordID string) error {
	return database.DB.Where("record_id = ?", recordID).Delete(&BossRecord{}).Error
}
