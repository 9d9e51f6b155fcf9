package planner

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ooopus/Exam-Papers/pkg/classifier"
	"github.com/ooopus/Exam-Papers/pkg/logger"
)

// Planner 递归遍历目录并生成无冲突的重命名计划
// 只做计算，不修改文件系统
type Planner struct {
	fs            afero.Fs
	rules         *classifier.RuleSet
	detectContent bool
}

func New(fs afero.Fs, rules *classifier.RuleSet) *Planner {
	return &Planner{
		fs:    fs,
		rules: rules,
	}
}

// EnableContentDetection 开启文件类型的内容探测回退
// 仅对文件类型规则未命中的文件生效
func (p *Planner) EnableContentDetection() {
	p.detectContent = true
}

// Plan 为 dir 生成重命名计划
// recursive 为 true 时递归处理子目录：每个子目录独立生成计划，
// 其认领名称集合按枚举顺序并入当前计划，对后续兄弟条目可见。
// 目录条目按名称排序处理，保证同一棵目录树的冲突判定结果稳定
func (p *Planner) Plan(dir string, recursive bool) (*Plan, error) {
	entries, err := afero.ReadDir(p.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("读取目录失败: %w", err)
	}

	plan := newPlan()

	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			// 目录本身不参与重命名
			if !recursive {
				continue
			}

			sub, err := p.Plan(entryPath, true)
			if err != nil {
				logger.Get().Error().Err(err).Msgf("处理子目录失败，已跳过: %s", entryPath)
				continue
			}
			plan.merge(sub)
			continue
		}

		p.planFile(dir, entry.Name(), plan)
	}

	return plan, nil
}

// planFile 处理单个文件：分类、生成候选名称、做冲突判定
// 每个文件恰好产生一条 RenamePair 或一条 Conflict
func (p *Planner) planFile(dir, name string, plan *Plan) {
	info := p.rules.Classify(name)

	if p.detectContent && info.FileType == classifier.Unknown {
		if label, ok := p.sniffFileType(filepath.Join(dir, name)); ok {
			info.FileType = label
		}
	}

	candidate := classifier.BuildName(name, info)

	if owner, ok := plan.Claimed[candidate]; ok {
		logger.Get().Debug().Msgf("名称冲突: %s -> %s (已被 %s 认领)", name, candidate, owner)
		plan.Conflicts = append(plan.Conflicts, Conflict{
			Name:      name,
			Path:      filepath.Join(dir, name),
			Candidate: candidate,
			Owner:     owner,
		})
		return
	}

	source := filepath.Join(dir, name)
	plan.Renames = append(plan.Renames, RenamePair{
		Source: source,
		Target: filepath.Join(dir, candidate),
	})
	plan.Claimed[candidate] = source
}
