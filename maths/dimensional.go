package maths

import "buckingham/types"

// Fundamentals 所有变量中出现的基本量纲（按首次出现顺序）
func Fundamentals(vars []types.Variable) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, v := range vars {
		for _, s := range v.Dimensions.Symbols() {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// BuildDimensionalMatrix 构建量纲矩阵（基本量纲 × 变量）
// 第(i,j)项为变量j中基本量纲i的指数；变量名无需唯一
func BuildDimensionalMatrix(vars []types.Variable) ([]string, *Matrix) {
	fundamentals := Fundamentals(vars)
	index := make(map[string]int, len(fundamentals))
	for i, s := range fundamentals {
		index[s] = i
	}
	m := NewMatrix(len(fundamentals), len(vars))
	for j, v := range vars {
		for _, d := range v.Dimensions.Dims() {
			m.Set(index[d.Symbol], j, d.Exponent.Float64())
		}
	}
	return fundamentals, m
}
