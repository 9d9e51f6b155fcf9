package classifier

import (
	"testing"

	"github.com/ooopus/Exam-Papers/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Rules.YearRegex = `(20\d{2})`
	cfg.Rules.MonthRegex = `20\d{2}[._-](\d{1,2})`
	cfg.Rules.ExamTypeRules = []config.Rule{
		{Pattern: `期中`, Type: "期中"},
		{Pattern: `期末`, Type: "期末"},
		{Pattern: `exam`, Type: "examA"},
	}
	cfg.Rules.FileTypeRules = []config.Rule{
		{Pattern: `答案`, Type: "答案"},
		{Pattern: `(?i)\.pdf$`, Type: "试卷"},
	}
	return cfg
}

func TestClassify_FullMatch(t *testing.T) {
	rs := Compile(testConfig())

	info := rs.Classify("2023_3_期中考试答案.pdf")

	if !info.HasYear || info.Year != "2023" {
		t.Errorf("Expected year 2023, got %q (has=%v)", info.Year, info.HasYear)
	}
	if !info.HasMonth || info.Month != "03" {
		t.Errorf("Expected month 03, got %q (has=%v)", info.Month, info.HasMonth)
	}
	if info.ExamType != "期中" {
		t.Errorf("Expected exam type 期中, got %q", info.ExamType)
	}
	if info.FileType != "答案" {
		t.Errorf("Expected file type 答案, got %q", info.FileType)
	}
}

func TestClassify_NoMatch(t *testing.T) {
	rs := Compile(testConfig())

	info := rs.Classify("随便一个文件.txt")

	if info.HasYear {
		t.Errorf("Expected no year, got %q", info.Year)
	}
	if info.HasMonth {
		t.Errorf("Expected no month, got %q", info.Month)
	}
	if info.ExamType != Unknown {
		t.Errorf("Expected exam type %q, got %q", Unknown, info.ExamType)
	}
	if info.FileType != Unknown {
		t.Errorf("Expected file type %q, got %q", Unknown, info.FileType)
	}
}

func TestClassify_MonthPadding(t *testing.T) {
	rs := Compile(testConfig())

	tests := []struct {
		filename string
		want     string
	}{
		{"2023_3_exam.pdf", "03"},
		{"2023_11_exam.pdf", "11"},
	}

	for _, tt := range tests {
		info := rs.Classify(tt.filename)
		if info.Month != tt.want {
			t.Errorf("Classify(%q) month = %q, want %q", tt.filename, info.Month, tt.want)
		}
	}
}

func TestClassify_RuleOrder(t *testing.T) {
	cfg := &config.Config{}
	cfg.Rules.ExamTypeRules = []config.Rule{
		{Pattern: `考试`, Type: "first"},
		{Pattern: `期中考试`, Type: "second"},
	}
	rs := Compile(cfg)

	// 两条规则都能命中时取配置中靠前的那条
	info := rs.Classify("期中考试.pdf")
	if info.ExamType != "first" {
		t.Errorf("Expected first matching rule to win, got %q", info.ExamType)
	}
}

func TestClassify_InvalidPatternSkipped(t *testing.T) {
	cfg := &config.Config{}
	cfg.Rules.YearRegex = `([0-9`
	cfg.Rules.ExamTypeRules = []config.Rule{
		{Pattern: `([`, Type: "broken"},
		{Pattern: `期末`, Type: "期末"},
	}
	rs := Compile(cfg)

	info := rs.Classify("2023期末.pdf")

	if info.HasYear {
		t.Error("Expected invalid year regex to be skipped")
	}
	if info.ExamType != "期末" {
		t.Errorf("Expected valid rule after invalid one to apply, got %q", info.ExamType)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	rs := Compile(testConfig())

	first := rs.Classify("2023_3_期中考试答案.pdf")
	second := rs.Classify("2023_3_期中考试答案.pdf")

	if first != second {
		t.Errorf("Classify is not idempotent: %+v != %+v", first, second)
	}
}

func TestBuildName_NoYear(t *testing.T) {
	info := Info{ExamType: Unknown, FileType: Unknown}

	got := BuildName("original_file.pdf", info)
	if got != "original_file.pdf" {
		t.Errorf("Expected original filename unchanged, got %q", got)
	}
}

func TestBuildName_YearAndMonth(t *testing.T) {
	info := Info{
		Year:     "2023",
		HasYear:  true,
		Month:    "03",
		HasMonth: true,
		ExamType: Unknown,
		FileType: Unknown,
	}

	got := BuildName("2023_3_something.pdf", info)
	want := "2023.03.未知.未知.pdf"
	if got != want {
		t.Errorf("BuildName() = %q, want %q", got, want)
	}
}

func TestBuildName_YearOnly(t *testing.T) {
	info := Info{
		Year:     "2021",
		HasYear:  true,
		ExamType: "期末",
		FileType: "试卷",
	}

	got := BuildName("2021期末试题.docx", info)
	want := "2021.期末.试卷.docx"
	if got != want {
		t.Errorf("BuildName() = %q, want %q", got, want)
	}
}

func TestBuildName_NoExtension(t *testing.T) {
	info := Info{
		Year:     "2022",
		HasYear:  true,
		Month:    "06",
		HasMonth: true,
		ExamType: "期中",
		FileType: Unknown,
	}

	got := BuildName("2022_6_期中", info)
	want := "2022.06.期中.未知"
	if got != want {
		t.Errorf("BuildName() = %q, want %q", got, want)
	}
}
