package types

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidExponent 指数定义错误（分母为零或无法解析）
var ErrInvalidExponent = errors.New("types: invalid exponent")

// Exponent 有理数指数（约分后的 num/den，den>0）
// 输入量纲必须精确，因此不使用浮点数保存
type Exponent struct {
	num, den int64
}

// NewExponent 创建有理数指数 num/den
func NewExponent(num, den int64) (Exponent, error) {
	if den == 0 {
		return Exponent{}, fmt.Errorf("%w: zero denominator in %d/%d", ErrInvalidExponent, num, den)
	}
	return fromRat(big.NewRat(num, den))
}

// MustExponent 同 NewExponent，出错时panic
func MustExponent(num, den int64) Exponent {
	e, err := NewExponent(num, den)
	if err != nil {
		panic(err)
	}
	return e
}

// Int 整数指数
func Int(n int64) Exponent {
	return Exponent{num: n, den: 1}
}

// ParseExponent 解析 "3/2"、"-1"、"0.5" 形式的指数
func ParseExponent(s string) (Exponent, error) {
	s = strings.TrimSpace(s)
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Exponent{}, fmt.Errorf("%w: %q", ErrInvalidExponent, s)
	}
	return fromRat(r)
}

// fromRat 从 big.Rat 转换（big.Rat 已约分）
func fromRat(r *big.Rat) (Exponent, error) {
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return Exponent{}, fmt.Errorf("%w: %s overflows int64", ErrInvalidExponent, r.RatString())
	}
	return Exponent{num: r.Num().Int64(), den: r.Denom().Int64()}, nil
}

// rat 转换为 big.Rat 进行精确运算
func (e Exponent) rat() *big.Rat {
	if e.den == 0 {
		// 零值 Exponent{} 视为 0
		return new(big.Rat)
	}
	return big.NewRat(e.num, e.den)
}

// Num 分子
func (e Exponent) Num() int64 { return e.num }

// Den 分母（零值时为1）
func (e Exponent) Den() int64 {
	if e.den == 0 {
		return 1
	}
	return e.den
}

// IsZero 是否为零
func (e Exponent) IsZero() bool { return e.num == 0 }

// Float64 转换为浮点数
func (e Exponent) Float64() float64 {
	return float64(e.num) / float64(e.Den())
}

// Add 精确加法
func (e Exponent) Add(o Exponent) Exponent {
	r, err := fromRat(new(big.Rat).Add(e.rat(), o.rat()))
	if err != nil {
		panic(err)
	}
	return r
}

// Mul 精确乘法
func (e Exponent) Mul(o Exponent) Exponent {
	r, err := fromRat(new(big.Rat).Mul(e.rat(), o.rat()))
	if err != nil {
		panic(err)
	}
	return r
}

// Neg 取反
func (e Exponent) Neg() Exponent {
	return Exponent{num: -e.num, den: e.Den()}
}

// Equal 比较两个指数
func (e Exponent) Equal(o Exponent) bool {
	return e.num == o.num && e.Den() == o.Den()
}

// String 格式化输出，整数不带分母
func (e Exponent) String() string {
	if e.Den() == 1 {
		return fmt.Sprint(e.num)
	}
	return fmt.Sprintf("%d/%d", e.num, e.den)
}
