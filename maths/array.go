package maths

import (
	"fmt"
	"strings"
)

// Array N维浮点数组（行优先存储）
type Array struct {
	shape []int
	data  []float64
}

// NewArray 从形状和数据创建数组，len(data) 必须等于各维长度之积
func NewArray(shape []int, data []float64) (*Array, error) {
	size, err := shapeSize(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, fmt.Errorf("%w: data length %d does not match shape %v", ErrShapeMismatch, len(data), shape)
	}
	return &Array{shape: append([]int(nil), shape...), data: append([]float64(nil), data...)}, nil
}

// Zeros 创建零数组
func Zeros(shape ...int) *Array {
	size, err := shapeSize(shape)
	if err != nil {
		panic(err)
	}
	return &Array{shape: append([]int(nil), shape...), data: make([]float64, size)}
}

// FromRows 从二维切片创建 rows×cols 数组
func FromRows(rows [][]float64) (*Array, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrShapeMismatch, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return &Array{shape: []int{len(rows), cols}, data: data}, nil
}

// shapeSize 计算元素数量
func shapeSize(shape []int) (int, error) {
	size := 1
	for _, n := range shape {
		if n < 0 {
			return 0, fmt.Errorf("%w: negative dimension in shape %v", ErrShapeMismatch, shape)
		}
		size *= n
	}
	return size, nil
}

// Shape 形状副本
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// NDim 维数
func (a *Array) NDim() int { return len(a.shape) }

// Size 元素总数
func (a *Array) Size() int { return len(a.data) }

// Data 数据副本
func (a *Array) Data() []float64 { return append([]float64(nil), a.data...) }

// offset 多维索引转换为线性偏移（越界panic）
func (a *Array) offset(index []int) int {
	if len(index) != len(a.shape) {
		panic(fmt.Sprintf("array index rank mismatch: got %d, want %d", len(index), len(a.shape)))
	}
	off := 0
	for i, x := range index {
		if x < 0 || x >= a.shape[i] {
			panic(fmt.Sprintf("array index out of range: %v (shape %v)", index, a.shape))
		}
		off = off*a.shape[i] + x
	}
	return off
}

// At 获取元素
func (a *Array) At(index ...int) float64 { return a.data[a.offset(index)] }

// Set 设置元素
func (a *Array) Set(value float64, index ...int) { a.data[a.offset(index)] = value }

// Lane 沿某一轴的一维切片：元素 k 位于 Offset + k*Stride
type Lane struct {
	Offset int
	Stride int
}

// Lanes 枚举与 axis 正交的所有索引组合，每个组合对应一条沿 axis 的切片
// 调用方保证 0 <= axis < NDim()
func (a *Array) Lanes(axis int) []Lane {
	return lanes(a.shape, axis)
}

// lanes 按形状计算切片（外层维度 × 内层维度）
func lanes(shape []int, axis int) []Lane {
	outer, inner := 1, 1
	for _, n := range shape[:axis] {
		outer *= n
	}
	for _, n := range shape[axis+1:] {
		inner *= n
	}
	out := make([]Lane, 0, outer*inner)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			out = append(out, Lane{Offset: o*shape[axis]*inner + i, Stride: inner})
		}
	}
	return out
}

// Gather 读取一条切片（长度为 shape[axis]）
func (a *Array) Gather(l Lane, n int, dst []float64) []float64 {
	dst = dst[:0]
	for k := 0; k < n; k++ {
		dst = append(dst, a.data[l.Offset+k*l.Stride])
	}
	return dst
}

// Scatter 写入一条切片
func (a *Array) Scatter(l Lane, values []float64) {
	for k, v := range values {
		a.data[l.Offset+k*l.Stride] = v
	}
}

// String 格式化输出
func (a *Array) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Array%v", a.shape)
	sb.WriteString(fmt.Sprint(a.data))
	return sb.String()
}
