package maths

import "math"

// EliminationSolver 基于高斯-约当消元（部分主元）的零空间求解
// 每个自由列对应一个基向量，教科书式输入可得到整数形式的基
type EliminationSolver struct {
	// Tolerance 主元阈值，0 表示使用 ZeroTolerance
	Tolerance float64
}

// NullSpace 计算零空间
//
// 算法步骤:
//  1. 拷贝矩阵，逐列选取绝对值最大的行作为主元（部分主元）
//  2. 主元行归一化后消去其余所有行的该列，得到简化行阶梯形
//  3. 对每个自由列 f：v[f]=1，v[主元列] = -R[主元行][f]
func (s EliminationSolver) NullSpace(m *Matrix) ([][]float64, error) {
	tol := s.Tolerance
	if tol <= 0 {
		tol = ZeroTolerance
	}
	r := m.Clone()
	pivotCols := make([]int, 0, min(r.Rows(), r.Cols()))
	isPivot := make([]bool, r.Cols())
	row := 0
	for col := 0; col < r.Cols() && row < r.Rows(); col++ {
		// 部分主元选择
		maxRow, maxAbs := row, math.Abs(r.Get(row, col))
		for i := row + 1; i < r.Rows(); i++ {
			if v := math.Abs(r.Get(i, col)); v > maxAbs {
				maxRow, maxAbs = i, v
			}
		}
		if maxAbs <= tol {
			continue // 自由列
		}
		r.SwapRows(row, maxRow)
		// 主元行归一化
		pivot := r.Get(row, col)
		for j := col; j < r.Cols(); j++ {
			r.Set(row, j, r.Get(row, j)/pivot)
		}
		// 消去其余行
		for i := 0; i < r.Rows(); i++ {
			if i == row {
				continue
			}
			factor := r.Get(i, col)
			if factor == 0 {
				continue
			}
			for j := col; j < r.Cols(); j++ {
				r.Set(i, j, r.Get(i, j)-factor*r.Get(row, j))
			}
			r.Set(i, col, 0) // 显式置零
		}
		pivotCols = append(pivotCols, col)
		isPivot[col] = true
		row++
	}

	basis := make([][]float64, 0, r.Cols()-len(pivotCols))
	for f := 0; f < r.Cols(); f++ {
		if isPivot[f] {
			continue
		}
		v := make([]float64, r.Cols())
		v[f] = 1
		for i, p := range pivotCols {
			v[p] = -r.Get(i, f)
		}
		basis = append(basis, v)
	}
	return basis, nil
}
