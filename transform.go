package buckingham

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"buckingham/maths"
)

// Transform 计算各无量纲数的值
// values 按原始变量顺序给出，结果按无量纲数顺序返回
func (t *Transformer) Transform(values []float64) ([]float64, error) {
	if len(values) != len(t.variables) {
		return nil, &ShapeError{Axis: 0, Got: len(values), Want: len(t.variables)}
	}
	return t.evaluate(values, make([]float64, len(t.groups))), nil
}

// TransformNamed 计算各无量纲数的值（名称 → 值）
func (t *Transformer) TransformNamed(values []float64) (map[string]float64, error) {
	result, err := t.Transform(values)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(result))
	for i, g := range t.groups {
		out[g.Name] = result[i]
	}
	return out, nil
}

// evaluate 计算到 dst（调用方保证长度）
func (t *Transformer) evaluate(values, dst []float64) []float64 {
	for i, g := range t.groups {
		dst[i] = g.Evaluate(values)
	}
	return dst
}

// BatchTransform 沿 axis 对数组批量计算无量纲数
// axis 上的长度必须等于变量数量，负数表示从末尾计数；
// 结果数组的 axis 长度为无量纲数数量，其余维度不变，输入数组不会被修改
func (t *Transformer) BatchTransform(a *maths.Array, axis int) (*maths.Array, error) {
	shape := a.Shape()
	if axis < 0 {
		axis += len(shape)
	}
	if axis < 0 || axis >= len(shape) {
		return nil, fmt.Errorf("%w: axis %d for %d-dimensional array", ErrAxisOutOfRange, axis, len(shape))
	}
	if shape[axis] != len(t.variables) {
		return nil, &ShapeError{Axis: axis, Got: shape[axis], Want: len(t.variables)}
	}
	shape[axis] = len(t.groups)
	out := maths.Zeros(shape...)

	inLanes, outLanes := a.Lanes(axis), out.Lanes(axis)
	// 按并发数分块，每块写入输出数组中互不重叠的切片
	workers := max(t.config.Workers, 1)
	chunk := (len(inLanes) + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(inLanes); start += chunk {
		start := start
		end := min(start+chunk, len(inLanes))
		g.Go(func() error {
			values := make([]float64, len(t.variables))
			result := make([]float64, len(t.groups))
			for i := start; i < end; i++ {
				values = a.Gather(inLanes[i], len(t.variables), values)
				out.Scatter(outLanes[i], t.evaluate(values, result))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// BatchTransformDense 二维 gonum 矩阵的批量计算
// axis=1 表示每行是一组变量值，axis=0 表示每列是一组变量值
func (t *Transformer) BatchTransformDense(m mat.Matrix, axis int) (*mat.Dense, error) {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, m.At(i, j))
		}
	}
	a, err := maths.NewArray([]int{r, c}, data)
	if err != nil {
		return nil, err
	}
	out, err := t.BatchTransform(a, axis)
	if err != nil {
		return nil, err
	}
	if out.Size() == 0 {
		return nil, ErrNoGroups
	}
	shape := out.Shape()
	return mat.NewDense(shape[0], shape[1], out.Data()), nil
}
