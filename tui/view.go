package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	switch m.state {
	case StateConfig:
		return m.configView()
	case StatePlanning:
		return m.planningView()
	case StatePreview:
		return m.previewView()
	case StateExecuting:
		return m.executingView()
	case StateComplete:
		return m.completeView()
	case StateCancelled:
		return m.cancelledView()
	default:
		return "未知状态"
	}
}

func (m *model) configView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📝 试卷文件批量重命名工具") + "\n\n")

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n\n")

	b.WriteString(labelStyle.Render("1. 输入要处理的目录：") + "\n")
	if m.focus == FocusDirInput {
		b.WriteString(focusedStyle.Render(m.dirInput.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.dirInput.View()) + "\n\n")
	}

	b.WriteString(labelStyle.Render("2. 是否递归处理子文件夹：") + "\n")
	if m.focus == FocusRecursive {
		b.WriteString(focusedStyle.Render(m.recursiveList.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.recursiveList.View()) + "\n\n")
	}

	if m.inputErr != "" {
		b.WriteString(errorStyle.Render(m.inputErr) + "\n\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("错误: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("操作提示：") + "\n")
	b.WriteString("  • Tab 键切换焦点\n")
	b.WriteString("  • Enter 确认输入/选择\n")
	b.WriteString("  • Ctrl+C 退出程序\n")

	return lipgloss.NewStyle().
		Padding(1).
		Render(b.String())
}

func (m *model) planningView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔍 正在生成重命名计划...") + "\n\n")
	b.WriteString(m.spinner.View() + "\n")
	b.WriteString("  正在遍历目录并检测名称冲突...\n")
	b.WriteString("  处理目录: " + m.directory)

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) previewView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📋 重命名计划预览") + "\n")
	b.WriteString(previewBoxStyle.Render(m.preview.View()) + "\n\n")

	b.WriteString(fmt.Sprintf("共 %d 项重命名，%d 项冲突", len(m.plan.Renames), len(m.plan.Conflicts)))
	if dups := m.plan.DuplicateCount(); dups > 0 {
		b.WriteString(fmt.Sprintf("（其中 %d 项内容重复）", dups))
	}
	b.WriteString("\n\n")

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	if m.opts.DryRun {
		b.WriteString(hintStyle.Render("dry-run 模式：以上为最终结果，按 Enter 或 y 退出") + "\n")
	} else {
		b.WriteString(hintStyle.Render("y 确认执行重命名，n 取消，↑/↓ 滚动预览") + "\n")
	}

	return lipgloss.NewStyle().
		Padding(1).
		Render(b.String())
}

func (m *model) executingView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔄 正在重命名文件...") + "\n\n")

	b.WriteString(labelStyle.Render("执行进度：") + "\n")
	b.WriteString(m.progressBar.View() + "\n\n")

	b.WriteString(statsBoxStyle.Render(m.renderStats()) + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) completeView() string {
	var b strings.Builder

	if m.plan == nil || m.plan.Empty() {
		b.WriteString(successTitleStyle.Render("✅ 没有需要重命名的文件") + "\n\n")
	} else {
		b.WriteString(successTitleStyle.Render("✅ 文件重命名操作已完成！") + "\n\n")
		b.WriteString(statsBoxStyle.Render(m.renderStats()) + "\n\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("按 Enter 或 q 退出") + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) cancelledView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("重命名操作已取消") + "\n\n")
	b.WriteString(hintStyle.Render("按 Enter 或 q 退出") + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) renderStats() string {
	var b strings.Builder

	b.WriteString("📊 统计：\n\n")
	if m.stats == nil {
		b.WriteString("  （无）\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("  计划重命名：  %d\n", m.stats.Planned))
	b.WriteString(fmt.Sprintf("  已重命名：    %d\n", m.stats.Renamed))
	b.WriteString(fmt.Sprintf("  已跳过：      %d\n", m.stats.Skipped))
	b.WriteString(fmt.Sprintf("  失败：        %d\n", m.stats.Failed))
	b.WriteString(fmt.Sprintf("  冲突：        %d\n", m.stats.Conflicts))
	if m.stats.RunID != "" {
		b.WriteString(fmt.Sprintf("  运行 ID：     %s\n", m.stats.RunID))
	}

	return b.String()
}
