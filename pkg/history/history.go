package history

import (
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ooopus/Exam-Papers/pkg/logger"
)

// RenameRecord 一条已执行的重命名记录
type RenameRecord struct {
	ID         int64     `gorm:"primaryKey"`
	RunID      string    `gorm:"index;not null"`
	SourcePath string    `gorm:"not null"`
	TargetPath string    `gorm:"not null"`
	RenamedAt  time.Time `gorm:"not null"`
}

func (RenameRecord) TableName() string {
	return "rename_history"
}

// Store 重命名历史存储
// 仅记录已成功执行的重命名，写入失败不影响重命名本身
type Store struct {
	db *gorm.DB
}

func Open(dbPath string) (*Store, error) {
	expandedPath, err := expandPath(dbPath)
	if err != nil {
		logger.Get().Error().Err(err).Msg("扩展数据库路径失败")
		return nil, err
	}

	logger.Get().Debug().Msgf("打开历史数据库: %s", expandedPath)

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0755); err != nil {
		logger.Get().Error().Err(err).Msgf("创建数据库目录失败: %s", filepath.Dir(expandedPath))
		return nil, err
	}

	dsn := expandedPath + "?_pragma=journal_mode(WAL)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Get().Error().Err(err).Msg("打开数据库连接失败")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&RenameRecord{}); err != nil {
		logger.Get().Error().Err(err).Msg("创建数据库表失败")
		return nil, err
	}

	return &Store{db: db}, nil
}

func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// Record 记录一条已执行的重命名
func (s *Store) Record(runID, source, target string) error {
	record := &RenameRecord{
		RunID:      runID,
		SourcePath: source,
		TargetPath: target,
		RenamedAt:  time.Now(),
	}

	if err := s.db.Create(record).Error; err != nil {
		logger.Get().Error().Err(err).Msgf("写入历史记录失败: %s", source)
		return err
	}
	return nil
}

// Recent 返回最近的重命名记录，按时间倒序
func (s *Store) Recent(limit int) ([]RenameRecord, error) {
	var records []RenameRecord
	err := s.db.Order("id DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ByRun 返回指定运行的全部重命名记录
func (s *Store) ByRun(runID string) ([]RenameRecord, error) {
	var records []RenameRecord
	err := s.db.Where("run_id = ?", runID).Order("id ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
