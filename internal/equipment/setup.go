package equipment

import (
	"fmt"

	"github.com/jx3tools/jx3-tracker-backend/internal/platform/config"
	"github.com/jx3tools/jx3-tracker-backend/internal/platform/database"
)

// PrimeDB 迁移装备表，并在本地目录为空且允许联网时做一次全量同步
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Equipment{}); err != nil {
		return fmt.Errorf("无法迁移装备表: %w", err)
	}

	n, err := Count()
	if err != nil {
		return err
	}
	if n == 0 && config.Cfg.Equipment.SyncEnabled {
		fmt.Println("本地装备目录为空，开始首次同步...")
		if err := SyncFromRemote(); err != nil {
			// 首次同步失败不阻塞启动，掉落解析会显示装备ID兜底
			fmt.Printf("首次同步装备目录失败: %v\n", err)
		}
		return nil
	}
	return nil
}

// PrimeCachedDB 完成数据库准备后把装备目录预热到Redis
func PrimeCachedDB() error {
	SetCacheTTL(config.Cfg.Equipment.CacheTTLHours)
	if err := PrimeDB(); err != nil {
		return err
	}
	return WarmupCache()
}
