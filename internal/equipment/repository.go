package equipment

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jx3tools/jx3-tracker-backend/internal/platform/database"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	// CacheKey 是Redis中装备目录缓存的Hash键
	CacheKey = "equip_cache"
)

// cacheTTL 由配置装载，默认24小时（与jx3box同步周期一致）
var cacheTTL = 24 * time.Hour

// SetCacheTTL 设置Redis装备缓存的有效期
func SetCacheTTL(hours int) {
	if hours > 0 {
		cacheTTL = time.Duration(hours) * time.Hour
	}
}

// GetByID 查询单件装备：优先走Redis缓存，缓存不可用或未命中时回落SQLite。
// 查不到视为"无掉落可报"，返回ok=false而不是错误。
func GetByID(equipID string) (Equipment, bool) {
	if equipID == "" {
		return Equipment{}, false
	}

	if database.IsRedisHealthy() && database.RDB != nil {
		data, err := database.RDB.HGet(database.Ctx, CacheKey, equipID).Result()
		if err == nil {
			var e Equipment
			if json.Unmarshal([]byte(data), &e) == nil {
				return e, true
			}
		}
		// redis.Nil（未命中）和解码失败都静默回落数据库
	}

	var e Equipment
	err := database.DB.Where("equip_id = ?", equipID).First(&e).Error
	if err != nil {
		return Equipment{}, false
	}
	return e, true
}

// NewLookup 返回一个带单次请求内存缓存的查询函数，
// 供聚合计算在一次请求里反复解析卡面装备。
func NewLookup() Lookup {
	seen := make(map[string]*Equipment)
	return func(equipID string) (Equipment, bool) {
		if cached, ok := seen[equipID]; ok {
			if cached == nil {
				return Equipment{}, false
			}
			return *cached, true
		}
		e, ok := GetByID(equipID)
		if !ok {
			seen[equipID] = nil
			return Equipment{}, false
		}
		seen[equipID] = &e
		return e, true
	}
}

// Count 返回本地装备目录的条目数
func Count() (int64, error) {
	var n int64
	if err := database.DB.Model(&Equipment{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("无法统计装备目录: %w", err)
	}
	return n, nil
}

// ReplaceAll 用一次同步的结果整体替换本地装备目录
func ReplaceAll(items []Equipment) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		// 硬删除旧目录：每日同步带回相同的equip_id，
		// 软删行残留的唯一索引会让重建批量插入失败
		if err := tx.Unscoped().Where("1 = 1").Delete(&Equipment{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.CreateInBatches(items, 200).Error
	})
}

// WarmupCache 把本地装备目录预热到Redis Hash，并设置有效期。
// Redis不可用时静默跳过，查询会直接走SQLite。
func WarmupCache() error {
	if database.RDB == nil || !database.IsRedisHealthy() {
		return nil
	}

	var items []Equipment
	if err := database.DB.Find(&items).Error; err != nil {
		return fmt.Errorf("无法从SQLite读取装备目录: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	pipe := database.RDB.Pipeline()
	pipe.Del(database.Ctx, CacheKey)
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			continue
		}
		pipe.HSet(database.Ctx, CacheKey, item.EquipID, data)
	}
	pipe.Expire(database.Ctx, CacheKey, cacheTTL)

	if _, err := pipe.Exec(database.Ctx); err != nil && err != redis.Nil {
		return fmt.Errorf("预热装备缓存到Redis失败: %w", err)
	}

	fmt.Printf("成功预热 %d 件装备到Redis缓存。\n", len(items))
	return nil
}
