// Package buckingham 基于 Buckingham Pi 定理的量纲分析
package buckingham

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"buckingham/debug"
	"buckingham/maths"
	"buckingham/types"
)

// Transformer 量纲分析会话
// 构造时一次性完成矩阵构建、零空间求解与无量纲数推导，之后只读，可并发使用
type Transformer struct {
	config       *Config
	variables    []types.Variable
	fundamentals []string
	matrix       *maths.Matrix
	nullSpace    [][]float64
	groups       []types.Group
	rank         int
}

// NewTransformer 创建量纲分析会话
// 空变量列表是合法输入，得到0个无量纲数
func NewTransformer(variables []types.Variable, opts ...Option) (*Transformer, error) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(config)
	}
	if config.Solver == nil {
		config.Solver = maths.SVDSolver{}
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Debug == nil {
		config.Debug = debug.None()
	}
	t := &Transformer{
		config:    config,
		variables: append([]types.Variable(nil), variables...),
	}
	// 构建量纲矩阵
	t.fundamentals, t.matrix = maths.BuildDimensionalMatrix(t.variables)
	// 求解零空间
	basis, err := config.Solver.NullSpace(t.matrix)
	if err != nil {
		return nil, fmt.Errorf("null space: %w", err)
	}
	for i, v := range basis {
		if len(v) != len(t.variables) {
			return nil, fmt.Errorf("null space vector %d: %w: length %d, want %d", i, maths.ErrSolverFailed, len(v), len(t.variables))
		}
	}
	t.nullSpace = maths.Normalize(basis, config.Tolerance)
	t.rank = len(t.variables) - len(t.nullSpace)
	t.groups = newGroups(t.variables, t.nullSpace)

	config.Logger.LogAttrs(context.Background(), slog.LevelDebug, "dimensional analysis complete",
		slog.Int("variables", len(t.variables)),
		slog.Int("fundamentals", len(t.fundamentals)),
		slog.Int("rank", t.rank),
		slog.Int("groups", len(t.groups)),
	)
	if config.Debug.IsDebug() {
		config.Debug.Update(t)
	}
	return t, nil
}

// newGroups 每个零空间基向量生成一个无量纲数 pi_0..pi_{k-1}
func newGroups(variables []types.Variable, basis [][]float64) []types.Group {
	names := make([]string, len(variables))
	for i, v := range variables {
		names[i] = v.Name
	}
	groups := make([]types.Group, len(basis))
	for i, exponents := range basis {
		groups[i] = types.NewGroup(i, names, exponents)
	}
	return groups
}

// Variables 原始变量列表
func (t *Transformer) Variables() []types.Variable {
	return append([]types.Variable(nil), t.variables...)
}

// Fundamentals 基本量纲（矩阵行顺序）
func (t *Transformer) Fundamentals() []string {
	return append([]string(nil), t.fundamentals...)
}

// DimensionalMatrix 量纲矩阵副本
func (t *Transformer) DimensionalMatrix() *maths.Matrix {
	return t.matrix.Clone()
}

// NullSpace 归一化后的零空间基（按列）
func (t *Transformer) NullSpace() [][]float64 {
	out := make([][]float64, len(t.nullSpace))
	for i, v := range t.nullSpace {
		out[i] = append([]float64(nil), v...)
	}
	return out
}

// Groups 无量纲数列表
func (t *Transformer) Groups() []types.Group {
	out := make([]types.Group, len(t.groups))
	for i, g := range t.groups {
		out[i] = types.NewGroup(i, g.Variables, g.Exponents)
	}
	return out
}

// Rank 量纲矩阵的秩
func (t *Transformer) Rank() int { return t.rank }

// Residuals 各无量纲数指数向量与量纲矩阵各行点积的最大绝对值
func (t *Transformer) Residuals() []float64 {
	out := make([]float64, len(t.nullSpace))
	for i, v := range t.nullSpace {
		out[i] = maths.Residual(t.matrix, v)
	}
	return out
}

// String 输出所有无量纲数的表达式
func (t *Transformer) String() string {
	lines := make([]string, len(t.groups))
	for i, g := range t.groups {
		lines[i] = g.String()
	}
	return strings.Join(lines, "\n")
}
