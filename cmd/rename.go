package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ooopus/Exam-Papers/app"
	"github.com/ooopus/Exam-Papers/tui"
)

var renameCmd = &cobra.Command{
	Use:   "rename [directory]",
	Short: "批量重命名目录中的文件",
	Long: `遍历指定目录中的文件，按配置规则从文件名提取年份、月份、考试类型和文件类型，
生成统一格式的新文件名并批量重命名。

目标名称冲突的文件不会被重命名，只在预览中报告。
省略目录参数或递归选项时进入交互模式。`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	recursive, _ := cmd.Flags().GetBool("recursive")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	assumeYes, _ := cmd.Flags().GetBool("yes")
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	directory := ""
	if len(args) > 0 {
		directory = args[0]
	}

	// 目录或递归选项缺失时进入交互模式
	if directory == "" || !cmd.Flags().Changed("recursive") {
		if !isTerminal() {
			return fmt.Errorf("缺少目录参数或 --recursive 选项，且当前不在终端中，无法交互")
		}
		return tui.Run(&tui.Options{
			Directory:  directory,
			Recursive:  recursive,
			DryRun:     dryRun,
			ConfigPath: configPath,
			Verbose:    verbose,
		})
	}

	opts := &app.RenameOptions{
		Directory:  directory,
		Recursive:  recursive,
		DryRun:     dryRun,
		AssumeYes:  assumeYes,
		ConfigPath: configPath,
		Verbose:    verbose,
	}

	stats, err := app.RunRename(opts)
	if err != nil {
		return err
	}

	if stats == nil {
		fmt.Println("\n重命名操作已取消。")
		return nil
	}

	fmt.Println(stats.String())

	return nil
}

// isTerminal 判断标准输入是否连接到终端
func isTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func init() {
	renameCmd.Flags().BoolP("recursive", "r", false, "递归处理子文件夹")
	renameCmd.Flags().Bool("dry-run", false, "模拟运行，不执行实际重命名")
	renameCmd.Flags().BoolP("yes", "y", false, "跳过确认直接执行")
	renameCmd.Flags().StringP("config", "c", "", "配置文件路径")
	renameCmd.Flags().BoolP("verbose", "v", false, "显示详细日志")

	rootCmd.AddCommand(renameCmd)
}
