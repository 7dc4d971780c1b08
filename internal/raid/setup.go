package raid

import (
	"fmt"

	"github.com/jx3tools/jx3-tracker-backend/internal/platform/database"
)

// PrimeDB 迁移副本表，并在首次启动时写入内置目录
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Raid{}); err != nil {
		return fmt.Errorf("无法迁移副本表: %w", err)
	}

	var n int64
	if err := database.DB.Model(&Raid{}).Count(&n).Error; err != nil {
		return fmt.Errorf("无法统计副本目录: %w", err)
	}
	if n > 0 {
		return nil
	}

	catalog := DefaultCatalog()
	if err := database.DB.CreateInBatches(catalog, 50).Error; err != nil {
		return fmt.Errorf("无法写入内置副本目录: %w", err)
	}
	fmt.Printf("成功写入 %d 个内置副本条目。\n", len(catalog))
	return nil
}
