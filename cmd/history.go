package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ooopus/Exam-Papers/app"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "查看已执行的重命名历史",
	Long: `列出历史数据库中记录的重命名操作。

默认按时间倒序显示最近的记录，可用 --run 过滤单次运行。`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	runID, _ := cmd.Flags().GetString("run")
	limit, _ := cmd.Flags().GetInt("limit")
	configPath, _ := cmd.Flags().GetString("config")

	return app.RunHistory(&app.HistoryOptions{
		ConfigPath: configPath,
		RunID:      runID,
		Limit:      limit,
	})
}

func init() {
	historyCmd.Flags().String("run", "", "只显示指定运行 ID 的记录")
	historyCmd.Flags().Int("limit", 20, "显示的记录条数")
	historyCmd.Flags().StringP("config", "c", "", "配置文件路径")

	rootCmd.AddCommand(historyCmd)
}
