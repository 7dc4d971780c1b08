package raid

import (
	"fmt"
	"time"

	"github.com/jx3tools/jx3-tracker-backend/internal/gametime"
	"github.com/jx3tools/jx3-tracker-backend/internal/record"
)

// CD周期类型
const (
	CooldownNone     = "none"
	CooldownWeekly   = "weekly"
	CooldownBiweekly = "biweekly" // 一周两次重置（10人本）
)

// CooldownInfo 是某角色在某副本上的当前CD状态
type CooldownInfo struct {
	CanAdd                  bool       `json:"canAdd"`
	RemainingTime           int64      `json:"remainingTime"`
	NextAvailableTime       *time.Time `json:"nextAvailableTime"`
	CooldownType            string     `json:"cooldownType"`
	Message                 string     `json:"message"`
	HasRecordInCurrentCycle bool       `json:"hasRecordInCurrentCycle"`
}

// currentCycle 返回该副本在now时刻所处的CD周期
func currentCycle(r *Raid, now time.Time) gametime.Cycle {
	if r.IsTenPerson() {
		return gametime.HalfWeekCycle(now)
	}
	return gametime.WeeklyCycle(now)
}

func cooldownType(r *Raid) string {
	if r.IsTenPerson() {
		return CooldownBiweekly
	}
	return CooldownWeekly
}

// CalculateCooldown 计算角色在该副本的CD状态。
// records 应当是该角色在该副本的全部记录，按周期窗口过滤在内部完成。
// 配置了BOSS追踪的副本允许在同一周期内继续补打未击杀的BOSS。
func CalculateCooldown(r *Raid, records []record.RaidRecord, now time.Time) CooldownInfo {
	cycle := currentCycle(r, now)

	var inWindow []record.RaidRecord
	for _, rec := range records {
		if cycle.Contains(rec.Date.Millis()) {
			inWindow = append(inWindow, rec)
		}
	}

	if len(inWindow) == 0 {
		return CooldownInfo{
			CanAdd:       true,
			CooldownType: CooldownNone,
			Message:      "当前可添加记录",
		}
	}

	if bosses := r.TrackedBosses(); len(bosses) > 0 {
		killed := make(map[string]struct{})
		for _, rec := range inWindow {
			for _, id := range rec.KilledBossIDs() {
				killed[id] = struct{}{}
			}
		}
		cleared := len(killed) >= len(bosses)

		msg := "本周期可继续打剩余Boss"
		if cleared {
			msg = "本周期已全通（可继续分配Boss记录）"
		}
		end := cycle.End
		return CooldownInfo{
			CanAdd:                  true,
			NextAvailableTime:       &end,
			CooldownType:            cooldownType(r),
			Message:                 msg,
			HasRecordInCurrentCycle: cleared,
		}
	}

	end := cycle.End
	return CooldownInfo{
		CanAdd:            false,
		RemainingTime:     end.UnixMilli() - now.UnixMilli(),
		NextAvailableTime: &end,
		CooldownType:      cooldownType(r),
		Message: fmt.Sprintf("本周期记录已存在，%s 后刷新",
			end.Format("01-02 15:04")),
		HasRecordInCurrentCycle: true,
	}
}

// RefreshInfo 描述副本的刷新节奏
type RefreshInfo struct {
	NextRefreshTime time.Time `json:"nextRefreshTime"`
	RefreshCount    int       `json:"refreshCount"`
	RefreshSchedule string    `json:"refreshSchedule"`
}

// GetRefreshInfo 返回副本下一次刷新时间及每周刷新次数
func GetRefreshInfo(r *Raid, now time.Time) RefreshInfo {
	if r.IsTenPerson() {
		return RefreshInfo{
			NextRefreshTime: gametime.HalfWeekCycle(now).End,
			RefreshCount:    2,
			RefreshSchedule: "周一/周五 7:00",
		}
	}
	return RefreshInfo{
		NextRefreshTime: gametime.NextWeeklyReset(now),
		RefreshCount:    1,
		RefreshSchedule: "每周一 7:00",
	}
}

// CooldownRules 返回副本CD规则的中文描述
func CooldownRules(r *Raid) string {
	if r.IsTenPerson() {
		return "10人本：每周一 7:00 和 周五 7:00 刷新"
	}
	return "25人本：每周一 7:00 刷新"
}
