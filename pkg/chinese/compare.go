package chinese

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// 中文文本的排序比较，区服名和角色名按拼音序展示。
// collate.Collator不是并发安全的，这里用互斥锁包一层。

var (
	mu  sync.Mutex
	col = collate.New(language.Chinese)
)

// Compare 按中文排序规则比较a和b，返回 -1/0/1。
func Compare(a, b string) int {
	mu.Lock()
	defer mu.Unlock()
	return col.CompareString(a, b)
}
