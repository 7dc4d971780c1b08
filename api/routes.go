package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jx3tools/jx3-tracker-backend/internal/account"
	"github.com/jx3tools/jx3-tracker-backend/internal/drops"
	"github.com/jx3tools/jx3-tracker-backend/internal/equipment"
	"github.com/jx3tools/jx3-tracker-backend/internal/progress"
	"github.com/jx3tools/jx3-tracker-backend/internal/raid"
	"github.com/jx3tools/jx3-tracker-backend/internal/record"
	"github.com/jx3tools/jx3-tracker-backend/internal/stats"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// 账号与角色 /api/accounts
		accountRoutes := api.Group("/accounts")
		{
			accountRoutes.GET("", account.ListAll)
			accountRoutes.GET("/roster", account.ListRoster)
			accountRoutes.POST("", account.Create)
			accountRoutes.PUT("/:id", account.Update)
			accountRoutes.DELETE("/:id", account.Delete)
		}

		// 各类记录 /api/records
		recordRoutes := api.Group("/records")
		{
			recordRoutes.GET("/raid", record.ListRaids)
			recordRoutes.POST("/raid", record.CreateRaid)
			recordRoutes.PUT("/raid/:id", record.UpdateRaid)
			recordRoutes.DELETE("/raid/:id", record.DeleteRaid)

			recordRoutes.GET("/trial", record.ListTrials)
			recordRoutes.POST("/trial", record.CreateTrial)
			recordRoutes.DELETE("/trial/:id", record.DeleteTrial)

			recordRoutes.GET("/baizhan", record.ListBaizhan)
			recordRoutes.POST("/baizhan", record.CreateBaizhan)
			recordRoutes.PUT("/baizhan/:id", record.UpdateBaizhan)
			recordRoutes.DELETE("/baizhan/:id", record.DeleteBaizhan)

			recordRoutes.GET("/boss", record.ListBoss)
			recordRoutes.POST("/boss", record.CreateBoss)
			recordRoutes.DELETE("/boss/:id", record.DeleteBoss)
		}

		// 副本目录与CD /api/raids
		raidRoutes := api.Group("/raids")
		{
			raidRoutes.GET("", raid.ListAll)
			raidRoutes.PUT("/:id", raid.Update)
			raidRoutes.GET("/cooldown", raid.GetCooldown)
		}

		// 统计与掉落 /api/stats
		statsRoutes := api.Group("/stats")
		{
			statsRoutes.GET("/dashboard", stats.GetDashboard)
			statsRoutes.GET("/income", stats.GetIncome)
			statsRoutes.GET("/drops", drops.GetLedger)
		}

		// 周进度看板 /api/progress
		progressRoutes := api.Group("/progress")
		{
			progressRoutes.GET("/trial", progress.GetTrialBoard)
			progressRoutes.GET("/baizhan", progress.GetBaizhanBoard)
		}

		// 装备目录 /api/equipment
		equipmentRoutes := api.Group("/equipment")
		{
			equipmentRoutes.GET("/:id", equipment.GetEquipment)
			equipmentRoutes.POST("/sync", equipment.TriggerSync)
		}
	}
}
