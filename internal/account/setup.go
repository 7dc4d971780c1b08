package account

import (
	"fmt"

	"github.com/jx3tools/jx3-tracker-backend/internal/platform/database"
)

// PrimeDB 负责初始化account模块的数据库表结构
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&Account{}, &Role{}); err != nil {
		return fmt.Errorf("无法迁移账号表: %w", err)
	}
	fmt.Println("账号数据库表迁移成功。")
	return nil
}
