package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var Logger *zerolog.Logger

// Init 初始化 zerolog 日志
// level: 日志级别 ("debug", "info", "warn", "error")
// file: 日志文件路径，为空时仅输出到控制台
func Init(level string, file string) error {
	var output io.Writer = os.Stdout

	if file != "" {
		// 如果指定了文件，同时输出到文件和控制台
		fileWriter, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		output = io.MultiWriter(os.Stdout, fileWriter)
	}

	logger := log.Output(output).With().Timestamp().Logger().Level(parseLevel(level))

	// 设置为控制台友好的格式
	logger = logger.Output(zerolog.ConsoleWriter{Out: output, TimeFormat: "2006-01-02 15:04:05"})

	Logger = &logger
	return nil
}

// parseLevel 解析日志级别，无法识别时使用 info
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// InitFile 初始化仅输出到文件的日志
// 供 TUI 模式使用，控制台输出会破坏界面
func InitFile(level string, file string) error {
	fileWriter, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	logger := log.Output(fileWriter).With().Timestamp().Logger().Level(parseLevel(level))
	Logger = &logger
	return nil
}

// Get 返回全局 logger 实例
// 如果 logger 未初始化，返回一个默认的 logger（输出到 /dev/null）
func Get() *zerolog.Logger {
	if Logger == nil {
		logger := zerolog.New(io.Discard)
		Logger = &logger
	}
	return Logger
}
