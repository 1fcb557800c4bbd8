package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Group 无量纲数（Pi 数）
// 指数按原始变量的位置保存，变量名仅作为显示标签，重名变量互不覆盖
type Group struct {
	Name      string    // 名称 pi_<index>
	Variables []string  // 原始变量名（按位置）
	Exponents []float64 // 各原始变量的指数（按位置）
}

// NewGroup 创建无量纲数
func NewGroup(index int, variables []string, exponents []float64) Group {
	if len(variables) != len(exponents) {
		panic(fmt.Sprintf("group length mismatch: variables=%d, exponents=%d", len(variables), len(exponents)))
	}
	return Group{
		Name:      fmt.Sprintf("pi_%d", index),
		Variables: append([]string(nil), variables...),
		Exponents: append([]float64(nil), exponents...),
	}
}

// Len 原始变量数量
func (g Group) Len() int { return len(g.Exponents) }

// Exponent 第i个原始变量的指数
func (g Group) Exponent(i int) float64 { return g.Exponents[i] }

// Lookup 按变量名查找指数（重名时返回第一个）
func (g Group) Lookup(name string) (float64, bool) {
	for i, n := range g.Variables {
		if n == name {
			return g.Exponents[i], true
		}
	}
	return 0, false
}

// Evaluate 计算无量纲数的值：Π values[i]^Exponents[i]
// 调用方保证 len(values) == g.Len()
func (g Group) Evaluate(values []float64) float64 {
	result := 1.0
	for i, exp := range g.Exponents {
		if exp == 0 {
			continue
		}
		result *= math.Pow(values[i], exp)
	}
	return result
}

// String 格式化输出，如 "pi_0 = velocity^1 * length^-1 * time^1"
func (g Group) String() string {
	parts := make([]string, 0, len(g.Exponents))
	for i, exp := range g.Exponents {
		if exp == 0 {
			continue
		}
		parts = append(parts, g.Variables[i]+"^"+strconv.FormatFloat(exp, 'g', 6, 64))
	}
	return g.Name + " = " + strings.Join(parts, " * ")
}
