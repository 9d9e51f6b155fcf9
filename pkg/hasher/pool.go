package hasher

import (
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/afero"

	"github.com/ooopus/Exam-Papers/pkg/logger"
)

const taskBuffer = 256

type Task struct {
	Path string
}

type Result struct {
	Path string
	Hash uint64
	Err  error
}

// Pool 基于 ants 的哈希计算池
// 哈希计算与计划生成互不影响，仅用于冲突文件的内容比对
type Pool struct {
	fs      afero.Fs
	workers int
	tasks   chan Task
	results chan Result
	wg      sync.WaitGroup
	pool    *ants.Pool
}

func NewPool(fs afero.Fs, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		fs:      fs,
		workers: workers,
		tasks:   make(chan Task, taskBuffer),
		results: make(chan Result, taskBuffer),
	}
}

// Start 启动工作协程
func (p *Pool) Start() error {
	logger.Get().Debug().Msgf("启动哈希计算池，工作线程数: %d", p.workers)

	pool, err := ants.NewPool(p.workers)
	if err != nil {
		return err
	}
	p.pool = pool

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		if err := p.pool.Submit(p.worker); err != nil {
			p.wg.Done()
			return err
		}
	}

	return nil
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		hash, err := Calculate(p.fs, task.Path)
		p.results <- Result{
			Path: task.Path,
			Hash: hash,
			Err:  err,
		}
	}
}

func (p *Pool) Add(path string) {
	p.tasks <- Task{Path: path}
}

func (p *Pool) Results() <-chan Result {
	return p.results
}

// CloseTasks 关闭任务通道，等待所有任务完成后关闭结果通道
func (p *Pool) CloseTasks() {
	close(p.tasks)

	go func() {
		p.wg.Wait()
		close(p.results)
	}()
}

// Release 释放协程池
func (p *Pool) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
