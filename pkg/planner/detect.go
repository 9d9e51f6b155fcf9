package planner

import (
	"io"

	"github.com/h2non/filetype"

	"github.com/ooopus/Exam-Papers/pkg/logger"
)

// fileHeaderSize 内容探测所需的文件头部大小（字节）
const fileHeaderSize = 261

// sniffFileType 读取文件头部探测文件类型
// 探测失败或类型未知时返回 false，保持未知标签
func (p *Planner) sniffFileType(path string) (string, bool) {
	file, err := p.fs.Open(path)
	if err != nil {
		logger.Get().Debug().Err(err).Msgf("内容探测打开文件失败: %s", path)
		return "", false
	}
	defer file.Close()

	head := make([]byte, fileHeaderSize)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		logger.Get().Debug().Err(err).Msgf("读取文件头部失败: %s", path)
		return "", false
	}

	kind, err := filetype.Match(head[:n])
	if err != nil || kind == filetype.Unknown {
		return "", false
	}

	logger.Get().Debug().Msgf("内容探测: %s -> %s", path, kind.Extension)
	return kind.Extension, true
}
