package maths

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SVDSolver 基于奇异值分解的零空间求解
// 右奇异向量中对应奇异值不超过阈值的列构成零空间
type SVDSolver struct {
	// Tolerance 奇异值阈值，0 表示使用 max(r,c)·ε·σmax
	Tolerance float64
}

// NullSpace 计算零空间
func (s SVDSolver) NullSpace(m *Matrix) ([][]float64, error) {
	switch {
	case m.Cols() == 0:
		return [][]float64{}, nil
	case m.Rows() == 0:
		// 无约束：整个空间
		return identity(m.Cols()), nil
	}
	var svd mat.SVD
	if !svd.Factorize(m.Dense(), mat.SVDFull) {
		return nil, fmt.Errorf("%w: svd factorization did not converge", ErrSolverFailed)
	}
	values := svd.Values(nil)
	rank := countAbove(values, s.tolerance(m, values))
	var v mat.Dense
	svd.VTo(&v)
	basis := make([][]float64, 0, m.Cols()-rank)
	for j := rank; j < m.Cols(); j++ {
		basis = append(basis, mat.Col(nil, j, &v))
	}
	return basis, nil
}

// tolerance 计算秩判定阈值
func (s SVDSolver) tolerance(m *Matrix, values []float64) float64 {
	if s.Tolerance > 0 {
		return s.Tolerance
	}
	if len(values) == 0 {
		return 0
	}
	return float64(max(m.Rows(), m.Cols())) * Epsilon * floats.Max(values)
}

// Rank 矩阵的秩（tol 为0时使用默认阈值）
func Rank(m *Matrix, tol float64) (int, error) {
	if m.IsEmpty() {
		return 0, nil
	}
	var svd mat.SVD
	if !svd.Factorize(m.Dense(), mat.SVDNone) {
		return 0, fmt.Errorf("%w: svd factorization did not converge", ErrSolverFailed)
	}
	values := svd.Values(nil)
	return countAbove(values, SVDSolver{Tolerance: tol}.tolerance(m, values)), nil
}

// countAbove 统计大于阈值的奇异值数量
func countAbove(values []float64, tol float64) int {
	n := 0
	for _, v := range values {
		if v > tol {
			n++
		}
	}
	return n
}

// identity 单位基
func identity(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1
	}
	return out
}

// Residual 向量 v 对矩阵各行点积的最大绝对值（零空间校验）
func Residual(m *Matrix, v []float64) float64 {
	r := 0.0
	for _, x := range m.MulVec(v) {
		r = math.Max(r, math.Abs(x))
	}
	return r
}
