package maths

import "math"

// Normalize 逐列归一化零空间基：
// 绝对值不超过 tol 的分量置零，再除以最小非零分量的绝对值，
// 使每列最小非零分量的绝对值为1；全零列保持不变
func Normalize(basis [][]float64, tol float64) [][]float64 {
	if tol <= 0 {
		tol = ZeroTolerance
	}
	out := make([][]float64, len(basis))
	for k, col := range basis {
		v := make([]float64, len(col))
		minAbs := math.Inf(1)
		for i, x := range col {
			if math.Abs(x) <= tol {
				continue
			}
			v[i] = x
			minAbs = math.Min(minAbs, math.Abs(x))
		}
		if !math.IsInf(minAbs, 1) {
			for i := range v {
				v[i] /= minAbs
			}
		}
		out[k] = v
	}
	return out
}
