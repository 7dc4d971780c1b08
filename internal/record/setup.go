package record

import (
	"fmt"

	"github.com/jx3tools/jx3-tracker-backend/internal/platform/database"
)

// PrimeDB 负责初始化record模块的数据库表结构
func PrimeDB() error {
	if err := database.DB.AutoMigrate(
		&RaidRecord{},
		&TrialRecord{},
		&BaizhanRecord{},
		&BossRecord{},
	); err != nil {
		return fmt.Errorf("无法迁移记录表: %w", err)
	}
	fmt.Println("记录数据库表迁移成功。")
	return nil
}
