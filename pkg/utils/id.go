package utils

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewPostID 生成毫秒时间戳字符串作为帖子 ID，
// 同一毫秒内的并发调用单调递增，保证进程内唯一。
func NewPostID() string {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}
