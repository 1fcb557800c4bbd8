package maths

import (
	"reflect"
	"testing"
)

func TestMatrixBasics(t *testing.T) {
	m := NewMatrixFromRows(3, [][]float64{{1, 2, 3}, {4, 5, 6}})
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("希望 2×3, 得到 %d×%d", m.Rows(), m.Cols())
	}
	if !reflect.DeepEqual(m.Col(1), []float64{2, 5}) {
		t.Errorf("Col(1) 希望 [2 5], 得到 %v", m.Col(1))
	}
	if !reflect.DeepEqual(m.MulVec([]float64{1, 0, -1}), []float64{-2, -2}) {
		t.Errorf("MulVec 结果错误: %v", m.MulVec([]float64{1, 0, -1}))
	}

	c := m.Clone()
	c.SwapRows(0, 1)
	if c.Get(0, 0) != 4 || m.Get(0, 0) != 1 {
		t.Errorf("Clone 后交换行不应影响原矩阵")
	}

	d := m.Dense()
	if r, cols := d.Dims(); r != 2 || cols != 3 || d.At(1, 2) != 6 {
		t.Errorf("Dense() 转换错误")
	}
	if NewMatrix(0, 3).Dense() != nil {
		t.Errorf("空矩阵 Dense() 希望 nil")
	}
}
