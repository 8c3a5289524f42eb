package database

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Store 持有整个进程共享的那一个 *gorm.DB。
// 首次 Acquire 才真正开库（建表 + 种子数据）；并发的首次调用通过
// singleflight 合并成一次打开，失败会同时报给所有等待者。
type Store struct {
	opts Opts
	log  *zap.Logger

	mu sync.Mutex
	db *gorm.DB

	sf singleflight.Group
}

func NewStore(o Opts, l *zap.Logger) *Store {
	if l == nil {
		l = zap.NewNop()
	}
	return &Store{opts: o, log: l}
}

func (s *Store) Acquire(ctx context.Context) (*gorm.DB, error) {
	s.mu.Lock()
	if s.db != nil {
		db := s.db
		s.mu.Unlock()
		return db.WithContext(ctx), nil
	}
	s.mu.Unlock()

	v, err, _ := s.sf.Do("open", func() (any, error) {
		// 合并窗口之外可能已经有人开好了
		s.mu.Lock()
		if s.db != nil {
			db := s.db
			s.mu.Unlock()
			return db, nil
		}
		s.mu.Unlock()

		if err := s.ensureDir(); err != nil {
			return nil, err
		}
		db, err := NewGorm(s.opts)
		if err != nil {
			s.log.Error("store open failed", zap.Error(err), zap.String("dsn", s.opts.DSN))
			return nil, err
		}
		if err := MigrateAndSeed(db, s.log); err != nil {
			return nil, err
		}
		s.log.Info("store opened", zap.String("driver", s.opts.Driver), zap.String("dsn", s.opts.DSN))

		s.mu.Lock()
		s.db = db
		s.mu.Unlock()
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*gorm.DB).WithContext(ctx), nil
}

// Release 关闭连接并清空共享状态，进程退出和测试用例之间调用。
func (s *Store) Release() error {
	s.mu.Lock()
	db := s.db
	s.db = nil
	s.mu.Unlock()

	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return err
	}
	s.log.Info("store closed")
	return nil
}

// SetForTesting 用隔离句柄（如 sqlite ":memory:"）替换共享句柄，
// 注入的句柄不会被迁移、不会写种子数据。传 nil 恢复初始状态。
func (s *Store) SetForTesting(db *gorm.DB) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.db = db
}

func (s *Store) ensureDir() error {
	if s.opts.Driver != "sqlite" && s.opts.Driver != "" {
		return nil
	}
	if s.opts.DSN == ":memory:" || s.opts.DSN == "" {
		return nil
	}
	dir := filepath.Dir(s.opts.DSN)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
