package executor

import (
	"bytes"
	"fmt"
	"time"
)

// Stats 一次执行的统计信息
type Stats struct {
	RunID     string
	Planned   int
	Renamed   int
	Skipped   int
	Failed    int
	Conflicts int
	DryRun    bool
	Duration  time.Duration

	start time.Time
}

func (s *Stats) String() string {
	var buf bytes.Buffer

	buf.WriteString("========== 重命名统计 ==========\n")
	buf.WriteString(fmt.Sprintf("计划重命名: %d\n", s.Planned))

	if s.DryRun {
		buf.WriteString("模式: dry-run（未执行实际重命名）\n")
	} else {
		buf.WriteString(fmt.Sprintf("已重命名: %d\n", s.Renamed))
		buf.WriteString(fmt.Sprintf("已跳过: %d\n", s.Skipped))
		buf.WriteString(fmt.Sprintf("失败: %d\n", s.Failed))
	}

	buf.WriteString(fmt.Sprintf("冲突: %d\n", s.Conflicts))

	if !s.DryRun {
		if s.RunID != "" {
			buf.WriteString(fmt.Sprintf("运行 ID: %s\n", s.RunID))
		}
		buf.WriteString(fmt.Sprintf("耗时: %v\n", s.Duration.Round(time.Millisecond)))
	}

	buf.WriteString("==============================")

	return buf.String()
}
