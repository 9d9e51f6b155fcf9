package hasher

import (
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"

	"github.com/ooopus/Exam-Papers/pkg/logger"
)

// Calculate 计算文件内容的 xxHash 哈希值
func Calculate(fs afero.Fs, path string) (uint64, error) {
	logger.Get().Debug().Msgf("计算文件哈希: %s", path)

	file, err := fs.Open(path)
	if err != nil {
		logger.Get().Error().Err(err).Msgf("无法打开文件: %s", path)
		return 0, err
	}
	defer file.Close()

	hash := xxhash.New()
	if _, err := io.Copy(hash, file); err != nil {
		logger.Get().Error().Err(err).Msgf("计算哈希失败: %s", path)
		return 0, err
	}

	return hash.Sum64(), nil
}
