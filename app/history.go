package app

import (
	"fmt"

	"github.com/ooopus/Exam-Papers/config"
	"github.com/ooopus/Exam-Papers/pkg/history"
	"github.com/ooopus/Exam-Papers/pkg/logger"
)

type HistoryOptions struct {
	ConfigPath string
	RunID      string
	Limit      int
}

// RunHistory 列出已执行的重命名历史
func RunHistory(opts *HistoryOptions) error {
	if err := logger.Init("info", ""); err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("打开历史数据库失败: %w", err)
	}
	defer store.Close()

	var records []history.RenameRecord
	if opts.RunID != "" {
		records, err = store.ByRun(opts.RunID)
	} else {
		records, err = store.Recent(opts.Limit)
	}
	if err != nil {
		return fmt.Errorf("查询历史记录失败: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("没有历史记录。")
		return nil
	}

	for _, r := range records {
		fmt.Printf("%s  [%s]\n  %s -> %s\n",
			r.RenamedAt.Format("2006-01-02 15:04:05"), r.RunID, r.SourcePath, r.TargetPath)
	}

	return nil
}
