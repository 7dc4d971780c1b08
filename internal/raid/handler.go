package raid

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListAll 处理 GET /api/raids 请求。
// 支持 ?activeOnly=true 只返回启用的副本。
func ListAll(c *gin.Context) {
	raids, err := ListRaids()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取副本列表失败"})
		return
	}

	if c.Query("activeOnly") == "true" {
		filtered := make([]Raid, 0, len(raids))
		for _, r := range raids {
			if r.IsActive {
				filtered = append(filtered, r)
			}
		}
		raids = filtered
	}

	c.JSON(http.StatusOK, raids)
}

// Update 处理 PUT /api/raids/:id 请求（启停、BOSS配置调整）
func Update(c *gin.Context) {
	var r Raid
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}
	r.RaidID = c.Param("id")

	if err := UpdateRaid(&r); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "未找到该副本"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新副本失败"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// GetCooldown 处理 GET /api/raids/cooldown?raidId=&roleId= 请求，
// 返回角色在该副本的周期CD、刷新节奏以及BOSS级CD明细。
func GetCooldown(c *gin.Context) {
	raidID := c.Query("raidId")
	roleID := c.Query("roleId")
	if raidID == "" || roleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少raidId或roleId参数"})
		return
	}

	r, err := GetRaidByID(raidID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "未找到该副本"})
		return
	}

	records, err := roleRaidRecords(roleID, r.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取副本记录失败"})
		return
	}

	now := time.Now()
	info := CalculateCooldown(r, records, now)

	resp := gin.H{
		"cooldown": info,
		"refresh":  GetRefreshInfo(r, now),
		"rules":    CooldownRules(r),
	}

	if r.HasBossTracking() {
		bossRecords, err := roleBossRecords(roleID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "获取BOSS记录失败"})
			return
		}
		cooldowns := CalculateBossCooldowns(r, bossRecords, roleID, now)
		resp["bossCooldowns"] = cooldowns
		resp["bossStatus"] = SummarizeBossCooldowns(cooldowns)
	}

	c.JSON(http.StatusOK, resp)
}
