package config

import (
	"github.com/spf13/viper"

	"github.com/ooopus/Exam-Papers/pkg/logger"
)

const (
	// DefaultDatabasePath 重命名历史数据库默认路径
	DefaultDatabasePath = "~/.exam-papers/history.db"
)

// Rule 一条分类规则：正则模式 -> 类型标签
// 规则顺序有意义，匹配时取第一条命中的规则
type Rule struct {
	Pattern string `mapstructure:"pattern"`
	Type    string `mapstructure:"type"`
}

type Config struct {
	Rules struct {
		YearRegex     string `mapstructure:"year_regex"`
		MonthRegex    string `mapstructure:"month_regex"`
		ExamTypeRules []Rule `mapstructure:"exam_type_rules"`
		FileTypeRules []Rule `mapstructure:"file_type_rules"`
	}
	Detection struct {
		// Content 为 true 时，文件类型规则未命中的文件会读取文件头做内容探测
		Content bool
	}
	Database struct {
		Path string
	}
	Logging struct {
		Level string
		File  string
	}
}

var cfg Config

// Load 加载配置文件
// 配置文件缺失或格式错误不视为致命错误：记录警告后返回空规则配置，
// 此时不提取年份/月份，分类结果始终为未知
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath("$HOME/.exam-papers")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/exam-papers")
	}

	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("detection.content", false)
	v.SetDefault("logging.level", "info")

	cfg = Config{}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Get().Warn().Msg("未找到配置文件，使用默认规则")
		} else {
			logger.Get().Error().Err(err).Msg("配置文件格式错误，使用默认规则")
		}
		applyDefaults(v)
		return &cfg, nil
	}

	if err := v.Unmarshal(&cfg); err != nil {
		logger.Get().Error().Err(err).Msg("解析配置文件失败，使用默认规则")
		cfg = Config{}
		applyDefaults(v)
		return &cfg, nil
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	cfg.Database.Path = v.GetString("database.path")
	cfg.Detection.Content = v.GetBool("detection.content")
	cfg.Logging.Level = v.GetString("logging.level")
}

func Get() *Config {
	return &cfg
}
