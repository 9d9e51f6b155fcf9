package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/ooopus/Exam-Papers/app"
	"github.com/ooopus/Exam-Papers/pkg/executor"
	"github.com/ooopus/Exam-Papers/pkg/history"
	"github.com/ooopus/Exam-Papers/pkg/logger"
)

// newExecutor 创建执行器并尝试打开历史存储
// 历史数据库打开失败不阻止重命名
func newExecutor(m *model) *executor.Executor {
	exec := executor.New(m.fs, m.opts.DryRun)

	if !m.opts.DryRun {
		store, err := history.Open(m.cfg.Database.Path)
		if err != nil {
			logger.Get().Warn().Err(err).Msg("打开历史数据库失败，本次运行不记录历史")
		} else {
			m.store = store
			exec.SetHistory(store)
		}
	}

	return exec
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateConfig:
			return m.updateConfigPhase(msg)
		case StatePreview:
			return m.updatePreviewPhase(msg)
		case StateComplete, StateCancelled:
			if msg.String() == "enter" || msg.String() == "q" {
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case planDoneMsg:
		m.plan = msg.plan
		if m.plan.Empty() {
			m.state = StateComplete
			return m, nil
		}
		m.preview.SetContent(app.RenderPreview(m.plan, m.opts.DryRun))
		m.state = StatePreview
		return m, nil

	case renameStepMsg:
		return m.stepRename(msg.next)

	case errMsg:
		m.err = msg
		m.state = StateConfig
		return m, nil

	case spinnerTickMsg:
		if m.state == StatePlanning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, tea.Batch(cmd, spinnerTick())
		}
	}

	if m.state == StateConfig {
		var cmd tea.Cmd
		m.dirInput, cmd = m.dirInput.Update(msg)
		cmds = append(cmds, cmd)

		m.recursiveList, cmd = m.recursiveList.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.state == StatePreview {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.state == StateExecuting {
		model, cmd := m.progressBar.Update(msg)
		m.progressBar = model.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) updateConfigPhase(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "tab" {
		m.nextFocus()
		m.updateFocusState()
		return m, nil
	}

	if msg.String() == "enter" {
		return m.handleEnterKey()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.focus == FocusDirInput {
		m.dirInput, cmd = m.dirInput.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.recursiveList, cmd = m.recursiveList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) updatePreviewPhase(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		if m.opts.DryRun {
			return m, tea.Quit
		}
		m.state = StateExecuting
		return m, m.startExecution()
	case "n", "q":
		m.state = StateCancelled
		return m, nil
	case "enter":
		if m.opts.DryRun {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m *model) nextFocus() {
	switch m.focus {
	case FocusDirInput:
		m.focus = FocusRecursive
	case FocusRecursive:
		m.focus = FocusDirInput
	}
}

func (m *model) updateFocusState() {
	if m.focus == FocusDirInput {
		m.dirInput.Focus()
	} else {
		m.dirInput.Blur()
	}

	m.recursiveList.KeyMap.CursorUp.SetEnabled(m.focus == FocusRecursive)
	m.recursiveList.KeyMap.CursorDown.SetEnabled(m.focus == FocusRecursive)
}

func (m *model) handleEnterKey() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusDirInput:
		dir := m.dirInput.Value()
		isDir, err := afero.DirExists(m.fs, dir)
		if err != nil || !isDir {
			m.inputErr = "错误：指定的目录不存在，请重新输入。"
			return m, nil
		}
		m.directory = dir
		m.inputErr = ""
		m.focus = FocusRecursive
		m.updateFocusState()
		return m, nil

	case FocusRecursive:
		if m.directory == "" {
			m.inputErr = "请先输入要处理的目录路径。"
			m.focus = FocusDirInput
			m.updateFocusState()
			return m, nil
		}
		m.recursive = m.recursiveList.Index() == 1
		m.err = nil
		m.state = StatePlanning
		return m, tea.Batch(
			spinnerTick(),
			m.planCmd(),
		)
	}

	return m, nil
}

func (m *model) handleResize(msg tea.WindowSizeMsg) {
	width, height := msg.Width, msg.Height

	m.dirInput.Width = width - 10
	m.recursiveList.SetWidth(width - 4)
	m.preview.Width = width - 6
	m.preview.Height = height - 10
	m.progressBar.Width = width - 10
}

func (m *model) planCmd() tea.Cmd {
	return func() tea.Msg {
		plan, err := app.BuildPlan(m.fs, m.cfg, m.directory, m.recursive)
		if err != nil {
			return errMsg(err)
		}
		return planDoneMsg{plan: plan}
	}
}

// startExecution 初始化执行器并启动逐条重命名
func (m *model) startExecution() tea.Cmd {
	m.exec = newExecutor(m)
	m.stats = m.exec.Begin(m.plan)

	if len(m.plan.Renames) == 0 {
		return func() tea.Msg { return renameStepMsg{next: 0} }
	}

	return m.renameCmd(0)
}

func (m *model) renameCmd(index int) tea.Cmd {
	return func() tea.Msg {
		m.exec.ExecutePair(m.plan.Renames[index], m.stats)
		return renameStepMsg{next: index + 1}
	}
}

// stepRename 处理单条重命名完成后的进度推进
func (m *model) stepRename(next int) (tea.Model, tea.Cmd) {
	total := len(m.plan.Renames)

	if next >= total {
		m.exec.Finish(m.stats)
		if m.store != nil {
			m.store.Close()
			m.store = nil
		}
		m.state = StateComplete
		return m, m.progressBar.SetPercent(1.0)
	}

	percent := float64(next) / float64(total)
	return m, tea.Batch(
		m.progressBar.SetPercent(percent),
		m.renameCmd(next),
	)
}

func spinnerTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
