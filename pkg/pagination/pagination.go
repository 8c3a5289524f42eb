package pagination

import (
	"math"
	"strconv"
)

// MaxLimit 封顶 _limit，防止调用方拉满整表。
const MaxLimit = 100

type Params struct {
	Page  int
	Limit int
}

// Parse 解析 _page/_limit。非数字、缺省、零或负数都回落默认值，
// limit 额外封顶 MaxLimit。
func Parse(pageRaw, limitRaw string, defaultLimit int) Params {
	page := atoiOr(pageRaw, 1)
	if page < 1 {
		page = 1
	}
	limit := atoiOr(limitRaw, defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset 乘法溢出时饱和到正最大值：天文数字的 _page 仍然是越界空页，
// 不能回绕成负数被当作第一页。
func (p Params) Offset() int {
	off := (p.Page - 1) * p.Limit
	if p.Page > 1 && off/p.Limit != p.Page-1 {
		return math.MaxInt
	}
	return off
}

// TotalPages 向上取整，total 为 0 时返回 0。
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
