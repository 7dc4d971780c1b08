package startup

import (
	"fmt"

	"github.com/jx3tools/jx3-tracker-backend/internal/account"
	"github.com/jx3tools/jx3-tracker-backend/internal/equipment"
	"github.com/jx3tools/jx3-tracker-backend/internal/raid"
	"github.com/jx3tools/jx3-tracker-backend/internal/record"
)

// InitializeApplication 是应用首次启动时执行的总入口
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	if err := account.PrimeDB(); err != nil {
		return err
	}
	if err := record.PrimeDB(); err != nil {
		return err
	}
	if err := raid.PrimeDB(); err != nil {
		return err
	}
	if err := equipment.PrimeCachedDB(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}

// RebuildCache 在运行时热重建Redis里的装备缓存
func RebuildCache() error {
	fmt.Println("开始缓存热重建...")
	if err := equipment.WarmupCache(); err != nil {
		return err
	}
	fmt.Println("缓存热重建完成。")
	return nil
}
