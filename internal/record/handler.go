package record

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// --- 控制器函数 ---
// 周上限（百战1次/试炼3次）只影响进度展示，创建接口不做拦截。

// ListRaids 返回全部副本记录
func ListRaids(c *gin.Context) {
	records, err := ListRaidRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取副本记录失败"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// CreateRaid 新建一条副本记录
func CreateRaid(c *gin.Context) {
	var r RaidRecord
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误: " + err.Error()})
		return
	}
	if r.RecordID == "" {
		r.RecordID = uuid.NewString()
	}
	if err := CreateRaidRecord(&r); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存副本记录失败"})
		return
	}
	c.JSON(http.StatusCreated, r)
}

// UpdateRaid 按ID整条替换一条副本记录
func UpdateRaid(c *gin.Context) {
	var r RaidRecord
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误: " + err.Error()})
		return
	}
	r.RecordID = c.Param("id")
	if err := UpdateRaidRecord(&r); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

// DeleteRaid 按ID删除一条副本记录
func DeleteRaid(c *gin.Context) {
	if err := DeleteRaidRecord(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除副本记录失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已删除"})
}

// ListTrials 返回全部试炼记录
func ListTrials(c *gin.Context) {
	records, err := ListTrialRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取试炼记录失败"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// CreateTrial 新建一条试炼记录
func CreateTrial(c *gin.Context) {
	var r TrialRecord
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误: " + err.Error()})
		return
	}
	if r.RecordID == "" {
		r.RecordID = uuid.NewString()
	}
	if err := CreateTrialRecord(&r); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存试炼记录失败"})
		return
	}
	c.JSON(http.StatusCreated, r)
}

// DeleteTrial 按ID删除一条试炼记录
func DeleteTrial(c *gin.Context) {
	if err := DeleteTrialRecord(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除试炼记录失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已删除"})
}

// ListBaizhan 返回全部百战记录
func ListBaizhan(c *gin.Context) {
	records, err := ListBaizhanRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取百战记录失败"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// CreateBaizhan 新建一条百战记录
func CreateBaizhan(c *gin.Context) {
	var r BaizhanRecord
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误: " + err.Error()})
		return
	}
	if r.RecordID == "" {
		r.RecordID = uuid.NewString()
	}
	if err := CreateBaizhanRecord(&r); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存百战记录失败"})
		return
	}
	c.JSON(http.StatusCreated, r)
}

// UpdateBaizhan 按ID整条替换一条百战记录
func UpdateBaizhan(c *gin.Context) {
	var r BaizhanRecord
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误: " + err.Error()})
		return
	}
	r.RecordID = c.Param("id")
	if err := UpdateBaizhanRecord(&r); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

// DeleteBaizhan 按ID删除一条百战记录
func DeleteBaizhan(c *gin.Context) {
	if err := DeleteBaizhanRecord(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除百战记录失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已删除"})
}

// ListBoss 返回全部BOSS击杀记录
func ListBoss(c *gin.Context) {
	records, err := ListBossRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取BOSS记录失败"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// CreateBoss 新建一条BOSS击杀记录
func CreateBoss(c *gin.Context) {
	var r BossRecord
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误: " + err.Error()})
		return
	}
	if r.RecordID == "" {
		r.RecordID = uuid.NewString()
	}
	if err := CreateBossRecord(&r); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存BOSS记录失败"})
		return
	}
	c.JSON(http.StatusCreated, r)
}

// DeleteBoss 按ID删除一条BOSS击杀记录
func DeleteBoss(c *gin.Context) {
	if err := DeleteBossRecord(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除BOSS记录失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已删除"})
}
