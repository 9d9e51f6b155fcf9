package executor

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/ooopus/Exam-Papers/pkg/history"
	"github.com/ooopus/Exam-Papers/pkg/logger"
	"github.com/ooopus/Exam-Papers/pkg/planner"
)

// Executor 执行重命名计划
// 每个条目独立执行，单个失败不中断批次，也没有回滚
type Executor struct {
	fs     afero.Fs
	store  *history.Store
	dryRun bool
}

func New(fs afero.Fs, dryRun bool) *Executor {
	return &Executor{
		fs:     fs,
		dryRun: dryRun,
	}
}

// SetHistory 设置历史存储，store 为 nil 时不记录历史
func (e *Executor) SetHistory(store *history.Store) {
	e.store = store
}

// Execute 执行计划中的全部重命名
// dry-run 模式下不触碰文件系统，直接返回统计
func (e *Executor) Execute(plan *planner.Plan) *Stats {
	stats := e.Begin(plan)

	if e.dryRun {
		return stats
	}

	for _, pair := range plan.Renames {
		e.ExecutePair(pair, stats)
	}

	e.Finish(stats)
	return stats
}

// Begin 初始化一次执行的统计信息
// 非 dry-run 运行会分配运行 ID 用于历史记录
func (e *Executor) Begin(plan *planner.Plan) *Stats {
	stats := &Stats{
		Planned:   len(plan.Renames),
		Conflicts: len(plan.Conflicts),
		DryRun:    e.dryRun,
	}

	if e.dryRun {
		logger.Get().Info().Msg("以 dry-run 模式运行，未执行实际重命名")
		return stats
	}

	stats.RunID = uuid.New().String()
	stats.start = time.Now()

	logger.Get().Info().Msgf("开始执行重命名，运行 ID: %s", stats.RunID)
	return stats
}

// ExecutePair 执行单个重命名并更新统计
func (e *Executor) ExecutePair(pair planner.RenamePair, stats *Stats) {
	if pair.Target != pair.Source {
		// 计划生成之后文件系统可能已变化，目标已存在时跳过
		exists, err := afero.Exists(e.fs, pair.Target)
		if err == nil && exists {
			stats.Skipped++
			logger.Get().Warn().Msgf("目标文件已存在，跳过: %s -> %s", pair.Source, pair.Target)
			return
		}
	}

	if err := e.fs.Rename(pair.Source, pair.Target); err != nil {
		stats.Failed++
		logger.Get().Error().Err(err).Msgf("重命名失败: %s -> %s", pair.Source, pair.Target)
		return
	}

	stats.Renamed++
	logger.Get().Info().Msgf("已重命名: %s -> %s", pair.Source, pair.Target)

	if e.store != nil {
		// 历史记录写入失败不影响重命名结果
		_ = e.store.Record(stats.RunID, pair.Source, pair.Target)
	}
}

// Finish 结束一次执行，记录耗时
func (e *Executor) Finish(stats *Stats) {
	if !stats.start.IsZero() {
		stats.Duration = time.Since(stats.start)
	}
}
