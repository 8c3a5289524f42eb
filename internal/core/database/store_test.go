package database

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"go-users-posts-api/internal/domain"
)

func memStore() *Store {
	return NewStore(Opts{Driver: "sqlite", DSN: ":memory:"}, zap.NewNop())
}

func TestAcquire_OpensMigratesAndSeeds(t *testing.T) {
	st := memStore()
	defer st.Release()

	db, err := st.Acquire(context.Background())
	require.NoError(t, err)

	var users, posts int64
	require.NoError(t, db.Model(&domain.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&domain.Post{}).Count(&posts).Error)
	assert.EqualValues(t, 4, users)
	assert.EqualValues(t, 4, posts)
}

func TestAcquire_Idempotent(t *testing.T) {
	st := memStore()
	defer st.Release()

	a, err := st.Acquire(context.Background())
	require.NoError(t, err)
	b, err := st.Acquire(context.Background())
	require.NoError(t, err)

	sqlA, err := a.DB()
	require.NoError(t, err)
	sqlB, err := b.DB()
	require.NoError(t, err)
	assert.Same(t, sqlA, sqlB, "repeated Acquire must return the same shared handle")

	// 再开一遍不会重复写种子
	var users int64
	require.NoError(t, b.Model(&domain.User{}).Count(&users).Error)
	assert.EqualValues(t, 4, users)
}

func TestAcquire_ConcurrentCallersShareOneOpen(t *testing.T) {
	st := memStore()
	defer st.Release()

	const n = 16
	handles := make([]*gorm.DB, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i], errs[i] = st.Acquire(context.Background())
		}(i)
	}
	wg.Wait()

	first, err := handles[0].DB()
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		sqlDB, err := handles[i].DB()
		require.NoError(t, err)
		assert.Same(t, first, sqlDB)
	}

	var users int64
	require.NoError(t, handles[0].Model(&domain.User{}).Count(&users).Error)
	assert.EqualValues(t, 4, users, "a single open must seed exactly once")
}

func TestAcquire_OpenFailureSurfacedToAllCallers(t *testing.T) {
	st := NewStore(Opts{Driver: "sqlite", DSN: "/dev/null/nope/data.db"}, zap.NewNop())

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = st.Acquire(context.Background())
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		assert.Error(t, errs[i])
	}
}

func TestAcquire_UnsupportedDriver(t *testing.T) {
	st := NewStore(Opts{Driver: "oracle", DSN: "whatever"}, zap.NewNop())
	_, err := st.Acquire(context.Background())
	assert.Error(t, err)
}

func TestRelease_ClearsSharedState(t *testing.T) {
	st := memStore()

	_, err := st.Acquire(context.Background())
	require.NoError(t, err)
	require.NoError(t, st.Release())

	// 释放后再取会重新打开
	db, err := st.Acquire(context.Background())
	require.NoError(t, err)
	var users int64
	require.NoError(t, db.Model(&domain.User{}).Count(&users).Error)
	assert.EqualValues(t, 4, users)
	require.NoError(t, st.Release())

	// 没有句柄时 Release 是空操作
	assert.NoError(t, st.Release())
}

func TestSetForTesting_SkipsMigrateAndSeed(t *testing.T) {
	st := memStore()
	defer st.Release()

	iso, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := iso.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // ":memory:" 下每个连接是独立库
	require.NoError(t, iso.AutoMigrate(&domain.User{}, &domain.Address{}, &domain.Post{}))

	st.SetForTesting(iso)
	db, err := st.Acquire(context.Background())
	require.NoError(t, err)

	var users int64
	require.NoError(t, db.Model(&domain.User{}).Count(&users).Error)
	assert.EqualValues(t, 0, users, "an injected handle must never receive the default seed rows")
}
