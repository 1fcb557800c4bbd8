package buckingham

import (
	"log/slog"
	"runtime"

	"buckingham/debug"
	"buckingham/maths"
)

// Config 分析配置
type Config struct {
	Solver    maths.NullSpaceSolver // 零空间求解器
	Tolerance float64               // 归一化零值阈值
	Workers   int                   // 批量计算并发数
	Logger    *slog.Logger          // 日志
	Debug     debug.Debug           // 调试记录
}

// Option 配置项
type Option func(*Config)

// defaultConfig 默认配置
func defaultConfig() *Config {
	return &Config{
		Solver:    maths.SVDSolver{},
		Tolerance: maths.ZeroTolerance,
		Workers:   runtime.GOMAXPROCS(0),
		Logger:    slog.Default(),
		Debug:     debug.None(),
	}
}

// WithSolver 指定零空间求解器
func WithSolver(s maths.NullSpaceSolver) Option {
	return func(c *Config) { c.Solver = s }
}

// WithTolerance 指定归一化零值阈值
func WithTolerance(tol float64) Option {
	return func(c *Config) { c.Tolerance = tol }
}

// WithWorkers 指定批量计算并发数（<1 时为1）
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = max(n, 1) }
}

// WithLogger 指定日志
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithDebug 指定调试记录
func WithDebug(d debug.Debug) Option {
	return func(c *Config) { c.Debug = d }
}
