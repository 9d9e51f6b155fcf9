package planner

import (
	"github.com/ooopus/Exam-Papers/pkg/hasher"
	"github.com/ooopus/Exam-Papers/pkg/logger"
)

// AnnotateDuplicates 标记与认领者内容完全相同的冲突
// 只在计划生成之后调用，冲突文件与认领者都尚未被重命名，
// 哈希计算并发执行，不改变计划本身的归属判定
func (p *Planner) AnnotateDuplicates(plan *Plan, workers int) {
	if len(plan.Conflicts) == 0 {
		return
	}

	paths := make(map[string]struct{})
	for _, c := range plan.Conflicts {
		paths[c.Path] = struct{}{}
		paths[c.Owner] = struct{}{}
	}

	pool := hasher.NewPool(p.fs, workers)
	if err := pool.Start(); err != nil {
		logger.Get().Error().Err(err).Msg("启动哈希计算池失败，跳过重复内容检测")
		return
	}
	defer pool.Release()

	go func() {
		for path := range paths {
			pool.Add(path)
		}
		pool.CloseTasks()
	}()

	hashes := make(map[string]uint64, len(paths))
	for result := range pool.Results() {
		if result.Err != nil {
			continue
		}
		hashes[result.Path] = result.Hash
	}

	for i := range plan.Conflicts {
		c := &plan.Conflicts[i]
		src, okSrc := hashes[c.Path]
		own, okOwn := hashes[c.Owner]
		if okSrc && okOwn && src == own {
			c.Duplicate = true
			logger.Get().Debug().Msgf("冲突文件内容与认领者相同: %s", c.Name)
		}
	}
}
