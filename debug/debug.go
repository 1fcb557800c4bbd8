package debug

import (
	"io"

	"buckingham/maths"
	"buckingham/types"
)

// Source 分析结果的只读视图
type Source interface {
	Variables() []types.Variable
	Fundamentals() []string
	DimensionalMatrix() *maths.Matrix
	NullSpace() [][]float64
	Groups() []types.Group
}

// Debug 调试接口
type Debug interface {
	IsDebug() bool
	SetDebug(is bool)
	Update(src Source)
	Render(w io.Writer) error
}

// None 空调试实现
func None() Debug { return &debug{} }

type debug struct{ is bool }

func (debug *debug) IsDebug() bool     { return debug.is }
func (debug *debug) SetDebug(is bool)  { debug.is = is }
func (debug) Update(src Source)        {}
func (debug) Render(w io.Writer) error { return nil }
