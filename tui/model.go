package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/ooopus/Exam-Papers/config"
	"github.com/ooopus/Exam-Papers/pkg/executor"
	"github.com/ooopus/Exam-Papers/pkg/history"
	"github.com/ooopus/Exam-Papers/pkg/planner"
)

type State int

const (
	StateConfig State = iota
	StatePlanning
	StatePreview
	StateExecuting
	StateComplete
	StateCancelled
)

type Focus int

const (
	FocusDirInput Focus = iota
	FocusRecursive
)

type model struct {
	state State
	focus Focus

	opts *Options
	cfg  *config.Config
	fs   afero.Fs

	directory string
	recursive bool

	dirInput      textinput.Model
	recursiveList list.Model
	preview       viewport.Model
	progressBar   progress.Model
	spinner       spinner.Model

	plan  *planner.Plan
	exec  *executor.Executor
	stats *executor.Stats
	store *history.Store

	inputErr string
	err      error
}

func initialModel(opts *Options, cfg *config.Config, fs afero.Fs) model {
	dirInput := textinput.New()
	dirInput.Placeholder = "请输入要处理的目录路径"
	dirInput.Prompt = "> "
	dirInput.PromptStyle = focusedPromptStyle
	dirInput.TextStyle = textStyle
	if opts.Directory != "" {
		dirInput.SetValue(opts.Directory)
	}
	dirInput.Focus()

	recursiveList := list.New([]list.Item{
		choiceItem{title: "仅处理当前目录", desc: "忽略所有子文件夹"},
		choiceItem{title: "递归处理子文件夹", desc: "子目录的认领名称对后续条目可见"},
	}, list.NewDefaultDelegate(), 0, 2)

	recursiveList.Title = "是否递归处理子文件夹"
	recursiveList.SetShowStatusBar(false)
	recursiveList.SetFilteringEnabled(false)
	recursiveList.Styles.Title = titleStyle
	recursiveList.Styles.TitleBar = titleStyle
	if opts.Recursive {
		recursiveList.Select(1)
	}

	preview := viewport.New(80, 20)

	progressBar := progress.New(progress.WithDefaultGradient())
	progressBar.PercentageStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Width(4)

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return model{
		state:         StateConfig,
		focus:         FocusDirInput,
		opts:          opts,
		cfg:           cfg,
		fs:            fs,
		recursive:     opts.Recursive,
		dirInput:      dirInput,
		recursiveList: recursiveList,
		preview:       preview,
		progressBar:   progressBar,
		spinner:       s,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

type choiceItem struct {
	title string
	desc  string
}

func (c choiceItem) Title() string       { return c.title }
func (c choiceItem) Description() string { return c.desc }
func (c choiceItem) FilterValue() string { return c.title }
