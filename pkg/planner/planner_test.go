package planner

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/ooopus/Exam-Papers/config"
	"github.com/ooopus/Exam-Papers/pkg/classifier"
)

func testRules() *classifier.RuleSet {
	cfg := &config.Config{}
	cfg.Rules.YearRegex = `(20\d{2})`
	cfg.Rules.MonthRegex = `20\d{2}[._-](\d{1,2})`
	cfg.Rules.ExamTypeRules = []config.Rule{
		{Pattern: `exam`, Type: "examA"},
	}
	cfg.Rules.FileTypeRules = []config.Rule{
		{Pattern: `(?i)\.pdf$`, Type: "pdf"},
	}
	return classifier.Compile(cfg)
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestPlan_ConflictFirstWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/papers/2023_03_examA.pdf", "a")
	writeFile(t, fs, "/papers/2023_03_examB.pdf", "b")

	p := New(fs, testRules())
	plan, err := p.Plan("/papers", false)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	// 两个文件产生相同候选名 2023.03.examA.pdf，按名称序第一个胜出
	if len(plan.Renames) != 1 {
		t.Fatalf("Expected 1 rename, got %d", len(plan.Renames))
	}
	if len(plan.Conflicts) != 1 {
		t.Fatalf("Expected 1 conflict, got %d", len(plan.Conflicts))
	}

	want := filepath.Join("/papers", "2023.03.examA.pdf")
	if plan.Renames[0].Target != want {
		t.Errorf("Rename target = %q, want %q", plan.Renames[0].Target, want)
	}
	if plan.Renames[0].Source != filepath.Join("/papers", "2023_03_examA.pdf") {
		t.Errorf("Expected first file in name order to win, got source %q", plan.Renames[0].Source)
	}

	c := plan.Conflicts[0]
	if c.Name != "2023_03_examB.pdf" {
		t.Errorf("Conflict name = %q, want 2023_03_examB.pdf", c.Name)
	}
	if c.Candidate != "2023.03.examA.pdf" {
		t.Errorf("Conflict candidate = %q, want 2023.03.examA.pdf", c.Candidate)
	}
}

func TestPlan_NoDuplicateTargets(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/root/2023_03_examA.pdf", "1")
	writeFile(t, fs, "/root/2023_03_examB.pdf", "2")
	writeFile(t, fs, "/root/2021_06_examC.pdf", "3")
	writeFile(t, fs, "/root/sub/2023_03_examD.pdf", "4")
	writeFile(t, fs, "/root/sub/deep/2021_06_examE.pdf", "5")
	writeFile(t, fs, "/root/unrelated.txt", "6")

	p := New(fs, testRules())
	plan, err := p.Plan("/root", true)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	seen := make(map[string]bool)
	for _, pair := range plan.Renames {
		if seen[pair.Target] {
			t.Errorf("Duplicate target path in plan: %s", pair.Target)
		}
		seen[pair.Target] = true
	}

	// 每个文件恰好出现在重命名或冲突中
	if len(plan.Renames)+len(plan.Conflicts) != 6 {
		t.Errorf("Expected 6 entries total, got %d renames + %d conflicts",
			len(plan.Renames), len(plan.Conflicts))
	}
}

func TestPlan_NoYearIsNoopRename(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/dir/notes.txt", "n")

	p := New(fs, testRules())
	plan, err := p.Plan("/dir", false)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	// 未提取到年份时候选名等于原名，仍然作为重命名对保留
	if len(plan.Renames) != 1 {
		t.Fatalf("Expected 1 rename, got %d", len(plan.Renames))
	}
	if plan.Renames[0].Source != plan.Renames[0].Target {
		t.Errorf("Expected no-op rename, got %q -> %q",
			plan.Renames[0].Source, plan.Renames[0].Target)
	}
	if _, ok := plan.Claimed["notes.txt"]; !ok {
		t.Error("Expected original name to be claimed")
	}
}

func TestPlan_NonRecursiveSkipsSubdirs(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/top/2023_03_examA.pdf", "a")
	writeFile(t, fs, "/top/sub/2021_06_examB.pdf", "b")

	p := New(fs, testRules())
	plan, err := p.Plan("/top", false)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if len(plan.Renames) != 1 {
		t.Fatalf("Expected only the top-level file, got %d renames", len(plan.Renames))
	}
	if len(plan.Conflicts) != 0 {
		t.Errorf("Expected no conflicts, got %d", len(plan.Conflicts))
	}
	if plan.Renames[0].Source != filepath.Join("/top", "2023_03_examA.pdf") {
		t.Errorf("Unexpected rename source %q", plan.Renames[0].Source)
	}
}

func TestPlan_SubdirClaimsVisibleToLaterSiblings(t *testing.T) {
	fs := afero.NewMemMapFs()
	// 排序后子目录 "a" 先于文件 "z_2023_03_exam.pdf" 处理，
	// 子目录中的认领对后续兄弟文件可见
	writeFile(t, fs, "/root/a/2023_03_examA.pdf", "inner")
	writeFile(t, fs, "/root/z_2023_03_exam.pdf", "outer")

	p := New(fs, testRules())
	plan, err := p.Plan("/root", true)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if len(plan.Renames) != 1 {
		t.Fatalf("Expected 1 rename, got %d", len(plan.Renames))
	}
	if plan.Renames[0].Source != filepath.Join("/root", "a", "2023_03_examA.pdf") {
		t.Errorf("Expected subdirectory file to win, got %q", plan.Renames[0].Source)
	}

	if len(plan.Conflicts) != 1 {
		t.Fatalf("Expected 1 conflict, got %d", len(plan.Conflicts))
	}
	if plan.Conflicts[0].Name != "z_2023_03_exam.pdf" {
		t.Errorf("Conflict name = %q, want z_2023_03_exam.pdf", plan.Conflicts[0].Name)
	}
}

func TestPlan_RenamesStayInParentDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/base/sub/2023_03_examA.pdf", "x")

	p := New(fs, testRules())
	plan, err := p.Plan("/base", true)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if len(plan.Renames) != 1 {
		t.Fatalf("Expected 1 rename, got %d", len(plan.Renames))
	}
	if filepath.Dir(plan.Renames[0].Target) != filepath.Join("/base", "sub") {
		t.Errorf("Rename must not move file across directories, target = %q",
			plan.Renames[0].Target)
	}
}

func TestPlan_MissingDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()

	p := New(fs, testRules())
	if _, err := p.Plan("/does/not/exist", false); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestAnnotateDuplicates(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/d/2023_03_examA.pdf", "same content")
	writeFile(t, fs, "/d/2023_03_examB.pdf", "same content")
	writeFile(t, fs, "/d/2023_03_examC.pdf", "different content")

	p := New(fs, testRules())
	plan, err := p.Plan("/d", false)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if len(plan.Conflicts) != 2 {
		t.Fatalf("Expected 2 conflicts, got %d", len(plan.Conflicts))
	}

	p.AnnotateDuplicates(plan, 2)

	for _, c := range plan.Conflicts {
		switch c.Name {
		case "2023_03_examB.pdf":
			if !c.Duplicate {
				t.Error("Expected examB to be marked as duplicate of examA")
			}
		case "2023_03_examC.pdf":
			if c.Duplicate {
				t.Error("Expected examC not to be marked as duplicate")
			}
		}
	}
}

func TestPlan_ContentDetectionFallback(t *testing.T) {
	fs := afero.NewMemMapFs()
	// PNG 文件头，文件名上没有任何文件类型规则能命中
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	if err := afero.WriteFile(fs, "/d/2023_03_exam_scan", png, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	p := New(fs, testRules())
	p.EnableContentDetection()

	plan, err := p.Plan("/d", false)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if len(plan.Renames) != 1 {
		t.Fatalf("Expected 1 rename, got %d", len(plan.Renames))
	}
	want := filepath.Join("/d", "2023.03.examA.png")
	if plan.Renames[0].Target != want {
		t.Errorf("Rename target = %q, want %q", plan.Renames[0].Target, want)
	}
}
