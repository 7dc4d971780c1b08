package stats

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jx3tools/jx3-tracker-backend/internal/account"
	"github.com/jx3tools/jx3-tracker-backend/internal/equipment"
	"github.com/jx3tools/jx3-tracker-backend/internal/gametime"
	"github.com/jx3tools/jx3-tracker-backend/internal/record"
)

// loadWindowed 拉取全量记录并按 ?period= 窗口过滤
func loadWindowed(c *gin.Context) (
	raids []record.RaidRecord,
	baizhan []record.BaizhanRecord,
	trials []record.TrialRecord,
	accounts []account.Account,
	ok bool,
) {
	period := gametime.ParsePeriod(c.Query("period"))
	start := gametime.PeriodStart(time.Now(), period)

	allRaids, err := record.ListRaidRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取副本记录失败"})
		return nil, nil, nil, nil, false
	}
	allBaizhan, err := record.ListBaizhanRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取百战记录失败"})
		return nil, nil, nil, nil, false
	}
	allTrials, err := record.ListTrialRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取试炼记录失败"})
		return nil, nil, nil, nil, false
	}
	accounts, err = account.ListAccounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取账号列表失败"})
		return nil, nil, nil, nil, false
	}

	raids = FilterRaidByWindow(allRaids, start)
	baizhan = FilterBaizhanByWindow(allBaizhan, start)
	trials = FilterTrialByWindow(allTrials, start)
	return raids, baizhan, trials, accounts, true
}

// GetDashboard 处理 GET /api/stats/dashboard?period=week|month|all 请求
func GetDashboard(c *gin.Context) {
	raids, baizhan, trials, accounts, ok := loadWindowed(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":      BuildDashboard(raids, baizhan, trials, accounts, equipment.NewLookup()),
		"chartData":  GoldHistogram(raids, baizhan),
		"luckyRole":  LuckiestRole(raids, baizhan),
		"bigSpender": BiggestSpender(raids, baizhan, accounts),
	})
}

// GetIncome 处理 GET /api/stats/income?period= 请求
func GetIncome(c *gin.Context) {
	raids, baizhan, _, accounts, ok := loadWindowed(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SummarizeIncome(raids, baizhan, accounts))
}
