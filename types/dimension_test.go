package types

import (
	"math"
	"reflect"
	"testing"
)

// TestDimensionVector 验证量纲向量的构造、查询与运算
func TestDimensionVector(t *testing.T) {
	// 1. 重复符号累加，零指数被移除，保持首次出现顺序
	v := NewDimensionVector(D("L", 1), D("T", -1), D("M", 0), D("L", 1))
	if !reflect.DeepEqual(v.Symbols(), []string{"L", "T"}) {
		t.Fatalf("Symbols() 希望 [L T], 得到 %v", v.Symbols())
	}
	if !v.Get("L").Equal(Int(2)) {
		t.Errorf("Get(L) 希望 2, 得到 %s", v.Get("L"))
	}
	if !v.Get("M").IsZero() {
		t.Errorf("缺省量纲希望为0, 得到 %s", v.Get("M"))
	}
	if v.String() != "L^2 * T^-1" {
		t.Errorf("String() 希望 L^2 * T^-1, 得到 %s", v.String())
	}

	// 2. 相加抵消后为无量纲
	inv := v.Scale(Int(-1))
	if !v.Add(inv).IsDimensionless() {
		t.Errorf("v + (-v) 希望无量纲, 得到 %s", v.Add(inv))
	}

	// 3. 分数乘方
	root := v.Scale(MustExponent(1, 2))
	if !root.Get("L").Equal(Int(1)) || !root.Get("T").Equal(MustExponent(-1, 2)) {
		t.Errorf("开方结果错误: %s", root)
	}

	// 4. 比较与顺序无关
	if !v.Equal(NewDimensionVector(D("T", -1), D("L", 2))) {
		t.Errorf("Equal 应与顺序无关")
	}
	if v.Equal(root) {
		t.Errorf("不同量纲不应相等")
	}
}

// TestVariableAndGroup 验证变量与无量纲数的输出和计算
func TestVariableAndGroup(t *testing.T) {
	velocity := NewVariable("velocity", D("L", 1), D("T", -1))
	if velocity.String() != "velocity = L^1 * T^-1" {
		t.Errorf("Variable.String() 得到 %s", velocity.String())
	}

	g := NewGroup(0, []string{"velocity", "length", "time"}, []float64{1, -1, 1})
	if g.Name != "pi_0" || g.Len() != 3 {
		t.Fatalf("NewGroup 结果错误: %+v", g)
	}
	if g.String() != "pi_0 = velocity^1 * length^-1 * time^1" {
		t.Errorf("Group.String() 得到 %s", g.String())
	}
	if got := g.Evaluate([]float64{2, 3, 4}); math.Abs(got-8.0/3.0) > 1e-12 {
		t.Errorf("Evaluate 希望 8/3, 得到 %f", got)
	}

	// 重名变量按位置保存，查找返回第一个
	dup := NewGroup(1, []string{"x", "x", "y"}, []float64{0.5, -1, 0})
	if e, ok := dup.Lookup("x"); !ok || e != 0.5 {
		t.Errorf("Lookup(x) 希望 0.5, 得到 %f %v", e, ok)
	}
	if dup.Exponent(1) != -1 {
		t.Errorf("Exponent(1) 希望 -1, 得到 %f", dup.Exponent(1))
	}
	if _, ok := dup.Lookup("z"); ok {
		t.Errorf("Lookup(z) 不应找到")
	}
	if dup.String() != "pi_1 = x^0.5 * x^-1" {
		t.Errorf("零指数应省略, 得到 %s", dup.String())
	}
	// 零指数不参与计算（0^0 不出现）
	if got := dup.Evaluate([]float64{4, 2, 0}); got != 1 {
		t.Errorf("Evaluate 希望 1, 得到 %f", got)
	}
}
