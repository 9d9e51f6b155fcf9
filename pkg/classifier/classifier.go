package classifier

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/ooopus/Exam-Papers/config"
	"github.com/ooopus/Exam-Papers/pkg/logger"
)

// Unknown 未能分类时使用的标签
const Unknown = "未知"

// rule 已编译的分类规则
type rule struct {
	pattern *regexp.Regexp
	label   string
}

// RuleSet 从配置编译得到的全部提取规则
// 规则列表保持配置中的顺序，分类时取第一条命中的规则
type RuleSet struct {
	yearRe        *regexp.Regexp
	monthRe       *regexp.Regexp
	examTypeRules []rule
	fileTypeRules []rule
}

// Info 从单个文件名提取出的信息
// Year/Month 为空串且对应 Has 标志为 false 时表示未提取到
type Info struct {
	Year     string
	HasYear  bool
	Month    string
	HasMonth bool
	ExamType string
	FileType string
}

// Compile 将配置中的正则规则编译为 RuleSet
// 无效的正则模式会记录警告并跳过，不会导致编译失败
func Compile(cfg *config.Config) *RuleSet {
	rs := &RuleSet{}

	rs.yearRe = compilePattern(cfg.Rules.YearRegex, "year_regex")
	rs.monthRe = compilePattern(cfg.Rules.MonthRegex, "month_regex")
	rs.examTypeRules = compileRules(cfg.Rules.ExamTypeRules, "exam_type_rules")
	rs.fileTypeRules = compileRules(cfg.Rules.FileTypeRules, "file_type_rules")

	return rs
}

func compilePattern(pattern, name string) *regexp.Regexp {
	if pattern == "" {
		return nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		logger.Get().Warn().Err(err).Str("key", name).Str("pattern", pattern).Msg("正则表达式无效，已跳过")
		return nil
	}
	return re
}

func compileRules(rules []config.Rule, name string) []rule {
	compiled := make([]rule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			logger.Get().Warn().Err(err).Str("key", name).Str("pattern", r.Pattern).Msg("正则表达式无效，已跳过")
			continue
		}
		compiled = append(compiled, rule{pattern: re, label: r.Type})
	}
	return compiled
}

// Classify 从文件名中提取年份、月份、考试类型和文件类型
// 纯函数：不访问文件系统，未匹配到是正常结果而非错误
func (rs *RuleSet) Classify(filename string) Info {
	info := Info{
		ExamType: Unknown,
		FileType: Unknown,
	}

	if rs.yearRe != nil {
		if m := rs.yearRe.FindStringSubmatch(filename); len(m) > 1 {
			info.Year = m[1]
			info.HasYear = true
		}
	}

	if rs.monthRe != nil {
		if m := rs.monthRe.FindStringSubmatch(filename); len(m) > 1 {
			info.Month = padMonth(m[1])
			info.HasMonth = true
		}
	}

	for _, r := range rs.examTypeRules {
		if r.pattern.MatchString(filename) {
			info.ExamType = r.label
			break
		}
	}

	for _, r := range rs.fileTypeRules {
		if r.pattern.MatchString(filename) {
			info.FileType = r.label
			break
		}
	}

	return info
}

// padMonth 将月份补齐为两位，如 "3" -> "03"
func padMonth(month string) string {
	if len(month) == 1 {
		return "0" + month
	}
	return month
}

// BuildName 根据提取的信息生成新文件名
// 未提取到年份时返回原文件名，扩展名原样保留
func BuildName(original string, info Info) string {
	if !info.HasYear {
		return original
	}

	ext := filepath.Ext(original)

	if info.HasMonth {
		return fmt.Sprintf("%s.%s.%s.%s%s", info.Year, info.Month, info.ExamType, info.FileType, ext)
	}
	return fmt.Sprintf("%s.%s.%s%s", info.Year, info.ExamType, info.FileType, ext)
}
