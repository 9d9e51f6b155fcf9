package planner

// RenamePair 一次计划中的重命名操作
// Source 和 Target 始终位于同一目录，重命名不会移动文件
type RenamePair struct {
	Source string
	Target string
}

// Conflict 候选名称已被其他文件认领的冲突记录
type Conflict struct {
	Name      string // 原文件名
	Path      string // 冲突文件的完整路径
	Candidate string // 冲突的候选名称
	Owner     string // 认领该名称的源文件完整路径
	Duplicate bool   // 与认领者内容完全相同
}

// Plan 一次遍历的完整重命名计划
// Claimed 的键是已认领的新文件名（不含路径），值是认领者的源文件路径。
// 名称一经认领不再移除，子目录的认领在合并后对后续兄弟条目可见
type Plan struct {
	Renames   []RenamePair
	Conflicts []Conflict
	Claimed   map[string]string
}

func newPlan() *Plan {
	return &Plan{
		Claimed: make(map[string]string),
	}
}

// Empty 计划中既无重命名也无冲突
func (p *Plan) Empty() bool {
	return len(p.Renames) == 0 && len(p.Conflicts) == 0
}

// DuplicateCount 已标记为内容重复的冲突数量
func (p *Plan) DuplicateCount() int {
	count := 0
	for _, c := range p.Conflicts {
		if c.Duplicate {
			count++
		}
	}
	return count
}

// merge 将子目录的计划并入当前计划
// 按枚举顺序合并，已存在的认领保持原认领者
func (p *Plan) merge(sub *Plan) {
	p.Renames = append(p.Renames, sub.Renames...)
	p.Conflicts = append(p.Conflicts, sub.Conflicts...)
	for name, owner := range sub.Claimed {
		if _, ok := p.Claimed[name]; !ok {
			p.Claimed[name] = owner
		}
	}
}
