package app

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ooopus/Exam-Papers/pkg/planner"
)

var (
	previewTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	renameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	conflictStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	duplicateNoteStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Faint(true)
)

// RenderPreview 渲染重命名计划预览
func RenderPreview(plan *planner.Plan, dryRun bool) string {
	var b strings.Builder

	title := "即将执行的重命名操作预览"
	if dryRun {
		title = "将要执行的重命名操作预览"
	}
	b.WriteString(previewTitleStyle.Render(title + ":"))
	b.WriteString("\n")

	for _, pair := range plan.Renames {
		line := fmt.Sprintf("  重命名: %s -> %s", filepath.Base(pair.Source), filepath.Base(pair.Target))
		b.WriteString(renameStyle.Render(line))
		b.WriteString("\n")
	}

	if len(plan.Conflicts) > 0 {
		b.WriteString("\n")
		b.WriteString(previewTitleStyle.Render("以下文件由于目标名称已被认领而将被跳过:"))
		b.WriteString("\n")
		for _, c := range plan.Conflicts {
			line := fmt.Sprintf("  跳过: %s (目标: %s)", c.Name, c.Candidate)
			b.WriteString(conflictStyle.Render(line))
			if c.Duplicate {
				b.WriteString(duplicateNoteStyle.Render(" （内容与认领者相同，可直接删除）"))
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString("\n没有文件因冲突而被跳过。\n")
	}

	return b.String()
}

// ConfirmStdin 从标准输入读取 y/n 确认
// 无效输入时重复询问
func ConfirmStdin() bool {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("\n确认执行重命名 (y/n)? ")
		if !scanner.Scan() {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y":
			return true
		case "n":
			return false
		default:
			fmt.Println("无效输入，请回答 'y' 或 'n'。")
		}
	}
}
