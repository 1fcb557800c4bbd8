package types

import "strings"

// Dim 单个基本量纲及其指数
type Dim struct {
	Symbol   string   // 量纲符号，如 "L"、"M"、"T"
	Exponent Exponent // 指数
}

// D 快捷构造整数指数量纲
func D(symbol string, exp int64) Dim {
	return Dim{Symbol: symbol, Exponent: Int(exp)}
}

// DimensionVector 量纲向量（基本量纲 → 有理数指数）
// 创建后不可修改，保持符号的首次出现顺序
type DimensionVector struct {
	dims []Dim
}

// NewDimensionVector 创建量纲向量
// 重复符号的指数累加，零指数不保存（缺省即为0）
func NewDimensionVector(dims ...Dim) DimensionVector {
	v := DimensionVector{}
	for _, d := range dims {
		v.dims = v.accumulate(d)
	}
	return v.compact()
}

// accumulate 累加一个量纲（返回新切片）
func (v DimensionVector) accumulate(d Dim) []Dim {
	for i := range v.dims {
		if v.dims[i].Symbol == d.Symbol {
			out := append([]Dim(nil), v.dims...)
			out[i].Exponent = out[i].Exponent.Add(d.Exponent)
			return out
		}
	}
	return append(append([]Dim(nil), v.dims...), d)
}

// compact 移除零指数
func (v DimensionVector) compact() DimensionVector {
	out := make([]Dim, 0, len(v.dims))
	for _, d := range v.dims {
		if !d.Exponent.IsZero() {
			out = append(out, d)
		}
	}
	return DimensionVector{dims: out}
}

// Get 获取量纲指数，不存在时为0
func (v DimensionVector) Get(symbol string) Exponent {
	for _, d := range v.dims {
		if d.Symbol == symbol {
			return d.Exponent
		}
	}
	return Int(0)
}

// Symbols 量纲符号列表（首次出现顺序）
func (v DimensionVector) Symbols() []string {
	out := make([]string, len(v.dims))
	for i, d := range v.dims {
		out[i] = d.Symbol
	}
	return out
}

// Dims 量纲列表副本
func (v DimensionVector) Dims() []Dim {
	return append([]Dim(nil), v.dims...)
}

// Len 非零量纲数量
func (v DimensionVector) Len() int { return len(v.dims) }

// IsDimensionless 是否无量纲
func (v DimensionVector) IsDimensionless() bool { return len(v.dims) == 0 }

// Add 量纲相加（物理量相乘）
func (v DimensionVector) Add(o DimensionVector) DimensionVector {
	return NewDimensionVector(append(v.Dims(), o.dims...)...)
}

// Scale 量纲数乘（物理量乘方）
func (v DimensionVector) Scale(e Exponent) DimensionVector {
	out := make([]Dim, len(v.dims))
	for i, d := range v.dims {
		out[i] = Dim{Symbol: d.Symbol, Exponent: d.Exponent.Mul(e)}
	}
	return NewDimensionVector(out...)
}

// Equal 判断量纲是否相同（与顺序无关）
func (v DimensionVector) Equal(o DimensionVector) bool {
	if len(v.dims) != len(o.dims) {
		return false
	}
	for _, d := range v.dims {
		if !o.Get(d.Symbol).Equal(d.Exponent) {
			return false
		}
	}
	return true
}

// String 格式化输出，如 "L^1 * T^-1"
func (v DimensionVector) String() string {
	parts := make([]string, len(v.dims))
	for i, d := range v.dims {
		parts[i] = d.Symbol + "^" + d.Exponent.String()
	}
	return strings.Join(parts, " * ")
}
