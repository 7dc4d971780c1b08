package raid

import (
	"time"

	"github.com/jx3tools/jx3-tracker-backend/internal/record"
)

// BossCooldownInfo 是某角色对单个BOSS的本周期CD状态
type BossCooldownInfo struct {
	BossID         string          `json:"bossId"`
	BossName       string          `json:"bossName"`
	HasRecord      bool            `json:"hasRecord"`
	LastRecordDate record.FlexTime `json:"lastRecordDate,omitempty"`
	CanAddRecord   bool            `json:"canAddRecord"`
}

// CalculateBossCooldowns 逐BOSS计算角色在当前周期内的击杀情况。
// 未启用BOSS追踪的副本返回空列表。
func CalculateBossCooldowns(r *Raid, bossRecords []record.BossRecord, roleID string, now time.Time) []BossCooldownInfo {
	bosses := r.TrackedBosses()
	if len(bosses) == 0 {
		return nil
	}

	cycle := currentCycle(r, now)

	result := make([]BossCooldownInfo, 0, len(bosses))
	for _, boss := range bosses {
		var last record.FlexTime
		hasRecord := false

		for i := range bossRecords {
			rec := &bossRecords[i]
			if rec.RoleID != roleID {
				continue
			}
			if !cycle.Contains(rec.Date.Millis()) {
				continue
			}
			killed := false
			for _, id := range rec.KilledBossIDs() {
				if id == boss.ID {
					killed = true
					break
				}
			}
			if !killed {
				continue
			}
			hasRecord = true
			if rec.Date > last {
				last = rec.Date
			}
		}

		result = append(result, BossCooldownInfo{
			BossID:         boss.ID,
			BossName:       boss.Name,
			HasRecord:      hasRecord,
			LastRecordDate: last,
			CanAddRecord:   !hasRecord,
		})
	}
	return result
}

// OverallBossStatus 汇总BOSS级CD：全部击杀视为整体进CD
type OverallBossStatus struct {
	AllInCooldown  bool `json:"allInCooldown"`
	CompletedCount int  `json:"completedCount"`
	TotalCount     int  `json:"totalCount"`
}

// SummarizeBossCooldowns 统计BOSS级CD的整体进度
func SummarizeBossCooldowns(cooldowns []BossCooldownInfo) OverallBossStatus {
	total := len(cooldowns)
	completed := 0
	for _, bc := range cooldowns {
		if bc.HasRecord {
			completed++
		}
	}
	return OverallBossStatus{
		AllInCooldown:  total > 0 && completed == total,
		CompletedCount: completed,
		TotalCount:     total,
	}
}

// AvailableBosses 返回当前周期内该角色仍可击杀的BOSS
func AvailableBosses(r *Raid, bossRecords []record.BossRecord, roleID string, now time.Time) []Boss {
	cooldowns := CalculateBossCooldowns(r, bossRecords, roleID, now)
	var available []Boss
	for _, bc := range cooldowns {
		if bc.CanAddRecord {
			available = append(available, Boss{ID: bc.BossID, Name: bc.BossName})
		}
	}
	return available
}
