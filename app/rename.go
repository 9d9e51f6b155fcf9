package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/afero"

	"github.com/ooopus/Exam-Papers/config"
	"github.com/ooopus/Exam-Papers/pkg/classifier"
	"github.com/ooopus/Exam-Papers/pkg/executor"
	"github.com/ooopus/Exam-Papers/pkg/history"
	"github.com/ooopus/Exam-Papers/pkg/logger"
	"github.com/ooopus/Exam-Papers/pkg/planner"
)

type RenameOptions struct {
	Directory  string
	Recursive  bool
	DryRun     bool
	AssumeYes  bool
	ConfigPath string
	Verbose    bool
}

// RunRename 执行完整的重命名流程：加载配置、生成计划、预览确认、执行
// 用户取消时返回 (nil, nil)
func RunRename(opts *RenameOptions) (*executor.Stats, error) {
	logLevel := "info"
	if opts.Verbose {
		logLevel = "debug"
	}
	if err := logger.Init(logLevel, ""); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if cfg.Logging.File != "" {
		if !opts.Verbose && cfg.Logging.Level != "" {
			logLevel = cfg.Logging.Level
		}
		if err := logger.Init(logLevel, cfg.Logging.File); err != nil {
			return nil, err
		}
	}

	fs := afero.NewOsFs()

	isDir, err := afero.DirExists(fs, opts.Directory)
	if err != nil {
		return nil, err
	}
	if !isDir {
		return nil, fmt.Errorf("指定的目录不存在: %s", opts.Directory)
	}

	logger.Get().Info().Msgf("处理目录: %s", opts.Directory)
	logger.Get().Info().Msgf("递归处理: %v", opts.Recursive)
	if opts.DryRun {
		logger.Get().Info().Msg("=== 预览模式，不会实际修改文件 ===")
	}

	plan, err := BuildPlan(fs, cfg, opts.Directory, opts.Recursive)
	if err != nil {
		return nil, err
	}

	if plan.Empty() {
		logger.Get().Info().Msg("没有需要重命名的文件")
		return &executor.Stats{DryRun: opts.DryRun}, nil
	}

	fmt.Println(RenderPreview(plan, opts.DryRun))

	if !opts.DryRun && !opts.AssumeYes {
		if !ConfirmStdin() {
			logger.Get().Info().Msg("重命名操作已取消")
			return nil, nil
		}
	}

	return ExecutePlan(fs, cfg, plan, opts.DryRun), nil
}

// BuildPlan 根据配置生成重命名计划并标注内容重复的冲突
func BuildPlan(fs afero.Fs, cfg *config.Config, dir string, recursive bool) (*planner.Plan, error) {
	rules := classifier.Compile(cfg)

	pl := planner.New(fs, rules)
	if cfg.Detection.Content {
		pl.EnableContentDetection()
	}

	plan, err := pl.Plan(dir, recursive)
	if err != nil {
		return nil, err
	}

	pl.AnnotateDuplicates(plan, runtime.NumCPU())

	return plan, nil
}

// ExecutePlan 执行计划并记录历史
// 历史数据库打开失败不阻止重命名，仅记录警告
func ExecutePlan(fs afero.Fs, cfg *config.Config, plan *planner.Plan, dryRun bool) *executor.Stats {
	exec := executor.New(fs, dryRun)

	if !dryRun {
		store, err := history.Open(cfg.Database.Path)
		if err != nil {
			logger.Get().Warn().Err(err).Msg("打开历史数据库失败，本次运行不记录历史")
		} else {
			exec.SetHistory(store)
			defer store.Close()
		}
	}

	return exec.Execute(plan)
}
