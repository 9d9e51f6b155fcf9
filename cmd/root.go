package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "exam-papers",
	Short: "按文件名规则批量重命名试卷文件的工具",
	Long: `Exam Papers 是一个命令行工具，用于按照配置的正则规则批量重命名文件。

主要功能:
- 从文件名中提取年份、月份、考试类型和文件类型
- 生成统一格式的新文件名（如 2023.03.期中.试卷.pdf）
- 预先检测目标名称冲突，冲突文件只报告不重命名
- 执行前展示完整预览并等待确认，支持 dry-run 模式
- 已执行的重命名记录在本地历史数据库中`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
