package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/ooopus/Exam-Papers/config"
	"github.com/ooopus/Exam-Papers/pkg/logger"
)

// Options 交互模式的启动参数
// Directory 为空时由用户在界面中输入
type Options struct {
	Directory  string
	Recursive  bool
	DryRun     bool
	ConfigPath string
	Verbose    bool
}

type teaModel struct {
	m *model
}

func (tm teaModel) Init() tea.Cmd {
	return tm.m.Init()
}

func (tm teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return tm.m.Update(msg)
}

func (tm teaModel) View() string {
	return tm.m.View()
}

// Run 启动交互式重命名流程
func Run(opts *Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	// 界面运行期间控制台日志会破坏画面，仅在配置了日志文件时输出日志
	if cfg.Logging.File != "" {
		level := cfg.Logging.Level
		if opts.Verbose {
			level = "debug"
		}
		if err := logger.InitFile(level, cfg.Logging.File); err != nil {
			return err
		}
	}

	m := initialModel(opts, cfg, afero.NewOsFs())
	p := tea.NewProgram(teaModel{m: &m}, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Get().Error().Err(err).Msg("TUI 运行错误")
		return err
	}

	logger.Get().Info().Msg("TUI 正常退出")
	return nil
}
