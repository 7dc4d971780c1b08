package drops

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jx3tools/jx3-tracker-backend/internal/account"
	"github.com/jx3tools/jx3-tracker-backend/internal/equipment"
	"github.com/jx3tools/jx3-tracker-backend/internal/record"
)

// GetLedger 处理 GET /api/stats/drops 请求。
// 账本看全部历史，不做时间窗口过滤；?order=input 保持组内输入顺序。
func GetLedger(c *gin.Context) {
	raids, err := record.ListRaidRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取副本记录失败"})
		return
	}
	trials, err := record.ListTrialRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取试炼记录失败"})
		return
	}
	accounts, err := account.ListAccounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取账号列表失败"})
		return
	}

	opts := Options{EventsDateDesc: c.Query("order") != "input"}
	c.JSON(http.StatusOK, BuildLedger(raids, trials, accounts, equipment.NewLookup(), opts))
}
