package equipment

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetEquipment 处理 GET /api/equipment/:id 请求，
// 返回装备详情及格式化后的属性词条。
func GetEquipment(c *gin.Context) {
	id := c.Param("id")
	e, ok := GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "未找到该装备"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"equipment":     e,
		"bindTypeLabel": e.BindTypeLabel(),
		"formatted":     FormatAttributes(e),
	})
}

// TriggerSync 处理 POST /api/equipment/sync 请求，手动触发一次全量同步
func TriggerSync(c *gin.Context) {
	if err := SyncFromRemote(); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "同步装备目录失败"})
		return
	}
	n, _ := Count()
	c.JSON(http.StatusOK, gin.H{"message": "同步完成", "count": n})
}
