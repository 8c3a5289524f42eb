package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Defaults(t *testing.T) {
	p := Parse("", "", 10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
}

func TestParse_NonNumericFallsBack(t *testing.T) {
	p := Parse("abc", "xyz", 20)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
}

func TestParse_ZeroAndNegativeClamped(t *testing.T) {
	p := Parse("0", "-5", 10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)

	p = Parse("-3", "0", 20)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
}

func TestParse_LimitCapped(t *testing.T) {
	p := Parse("1", "100000", 10)
	assert.Equal(t, MaxLimit, p.Limit)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, Params{Page: 5, Limit: 10}.Offset())
	assert.Equal(t, 6, Params{Page: 4, Limit: 2}.Offset())
}

func TestOffset_SaturatesInsteadOfWrapping(t *testing.T) {
	// (page-1)*limit 回绕成负数的话，OFFSET 会被丢掉、返回第一页
	p := Params{Page: 922337203685477580, Limit: 100}
	assert.Equal(t, math.MaxInt, p.Offset())
	assert.Greater(t, p.Offset(), 0)

	p = Params{Page: math.MaxInt, Limit: 2}
	assert.Equal(t, math.MaxInt, p.Offset())

	// 不溢出的大页号保持精确值
	p = Params{Page: 1_000_000, Limit: 100}
	assert.Equal(t, 99_999_900, p.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 4, TotalPages(4, 1))
}
