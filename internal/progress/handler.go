package progress

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jx3tools/jx3-tracker-backend/internal/account"
	"github.com/jx3tools/jx3-tracker-backend/internal/record"
)

// GetTrialBoard 处理 GET /api/progress/trial 请求，
// 返回排序后的试炼之地周进度看板。
func GetTrialBoard(c *gin.Context) {
	accounts, err := account.ListAccounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取账号列表失败"})
		return
	}
	records, err := record.ListTrialRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取试炼记录失败"})
		return
	}

	roles := account.FlattenRoles(accounts, account.FlattenOptions{
		ExcludeClient: true,
		Activity:      account.ActivityTrial,
	})

	now := time.Now()
	entries := make([]RosterEntry, 0, len(roles))
	for _, role := range roles {
		summary := TrialProgress(role.RoleID, records, now)
		entries = append(entries, RosterEntry{
			FlatRole:      role,
			Status:        summary.Status,
			StatusLabel:   summary.StatusLabel,
			LastRunMillis: summary.LastRun.Millis(),
			WeeklyCount:   summary.WeeklyCount,
			WeeklyCap:     summary.WeeklyCap,
			MaxLayer:      summary.MaxLayer,
		})
	}
	SortRoster(entries)

	c.JSON(http.StatusOK, entries)
}

// GetBaizhanBoard 处理 GET /api/progress/baizhan 请求
func GetBaizhanBoard(c *gin.Context) {
	accounts, err := account.ListAccounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取账号列表失败"})
		return
	}
	records, err := record.ListBaizhanRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取百战记录失败"})
		return
	}

	roles := account.FlattenRoles(accounts, account.FlattenOptions{
		ExcludeClient: true,
		Activity:      account.ActivityBaizhan,
	})

	now := time.Now()
	entries := make([]RosterEntry, 0, len(roles))
	for _, role := range roles {
		summary := BaizhanProgress(role.RoleID, records, now)
		entries = append(entries, RosterEntry{
			FlatRole:      role,
			Status:        summary.Status,
			StatusLabel:   summary.StatusLabel,
			LastRunMillis: summary.LastRun.Millis(),
			WeeklyCount:   summary.WeeklyCount,
			WeeklyCap:     summary.WeeklyCap,
			WeeklyIncome:  summary.WeeklyIncome,
		})
	}
	SortRoster(entries)

	c.JSON(http.StatusOK, entries)
}
