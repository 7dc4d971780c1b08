package equipment

import (
	"fmt"
	"time"

	"github.com/jx3tools/jx3-tracker-backend/internal/platform/config"
	"github.com/jx3tools/jx3-tracker-backend/pkg/lifecycle"
)

// SyncFromRemote 从jx3box拉取完整装备目录，落盘SQLite并重新预热Redis缓存。
// 拉取结果为空时保留旧目录，避免上游抖动清空本地数据。
func SyncFromRemote() error {
	keyword := config.Cfg.Equipment.Keyword
	items, err := FetchCatalog(keyword)
	if err != nil {
		return fmt.Errorf("同步装备目录失败: %w", err)
	}
	if len(items) == 0 {
		return fmt.Errorf("同步装备目录失败: 关键词 %q 没有返回任何条目", keyword)
	}

	if err := ReplaceAll(items); err != nil {
		return fmt.Errorf("写入装备目录失败: %w", err)
	}
	fmt.Printf("成功从jx3box同步 %d 件装备。\n", len(items))

	return WarmupCache()
}

// StartSyncScheduler 启动装备目录的每日同步协程。
// 同步失败只记日志不退出，下一轮继续重试。
func StartSyncScheduler(handle *lifecycle.Handle) {
	go func() {
		for {
			if err := handle.Sleep(24 * time.Hour); err != nil {
				return
			}
			if err := SyncFromRemote(); err != nil {
				fmt.Printf("定时同步装备目录出错: %v\n", err)
			}
		}
	}()
}
