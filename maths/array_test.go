package maths

import (
	"errors"
	"reflect"
	"testing"
)

// TestArrayIndexing 验证N维数组的行优先索引
func TestArrayIndexing(t *testing.T) {
	// 1. 2×3×2 数组，数据为 0..11
	data := make([]float64, 12)
	for i := range data {
		data[i] = float64(i)
	}
	a, err := NewArray([]int{2, 3, 2}, data)
	if err != nil {
		t.Fatalf("NewArray 出错: %v", err)
	}
	if a.NDim() != 3 || a.Size() != 12 {
		t.Fatalf("希望 3维12元素, 得到 %d维%d元素", a.NDim(), a.Size())
	}

	// 2. 行优先：(1,2,1) = 1*6 + 2*2 + 1 = 11
	if a.At(1, 2, 1) != 11 {
		t.Errorf("At(1,2,1) 希望 11, 得到 %f", a.At(1, 2, 1))
	}
	a.Set(-1, 0, 1, 0)
	if a.At(0, 1, 0) != -1 {
		t.Errorf("Set 后 At(0,1,0) 希望 -1, 得到 %f", a.At(0, 1, 0))
	}
	// 输入切片不应被数组引用
	if data[2] != 2 {
		t.Errorf("NewArray 应复制数据")
	}

	// 3. 数据长度不匹配
	if _, err := NewArray([]int{2, 2}, data); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("希望 ErrShapeMismatch, 得到 %v", err)
	}
	if _, err := NewArray([]int{-1}, nil); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("负维度希望 ErrShapeMismatch, 得到 %v", err)
	}
	if _, err := FromRows([][]float64{{1, 2}, {3}}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("不规则行希望 ErrShapeMismatch, 得到 %v", err)
	}
}

// TestArrayLanes 验证沿轴切片的枚举顺序和读写
func TestArrayLanes(t *testing.T) {
	data := make([]float64, 12)
	for i := range data {
		data[i] = float64(i)
	}
	a, _ := NewArray([]int{2, 3, 2}, data)

	// 沿轴1：外层2 × 内层2 共4条，每条3个元素
	lanes := a.Lanes(1)
	if len(lanes) != 4 {
		t.Fatalf("希望4条切片, 得到 %d", len(lanes))
	}
	expected := [][]float64{
		{0, 2, 4},
		{1, 3, 5},
		{6, 8, 10},
		{7, 9, 11},
	}
	buf := make([]float64, 0, 3)
	for i, l := range lanes {
		got := a.Gather(l, 3, buf)
		if !reflect.DeepEqual(got, expected[i]) {
			t.Errorf("切片%d希望 %v, 得到 %v", i, expected[i], got)
		}
	}

	// 沿最后一轴：每条为连续的2个元素
	last := a.Lanes(2)
	if len(last) != 6 || last[5].Offset != 10 || last[5].Stride != 1 {
		t.Errorf("沿轴2切片错误: %v", last)
	}

	// Scatter 写回
	out := Zeros(2, 1, 2)
	outLanes := out.Lanes(1)
	for i, l := range outLanes {
		out.Scatter(l, []float64{float64(i + 100)})
	}
	if !reflect.DeepEqual(out.Data(), []float64{100, 101, 102, 103}) {
		t.Errorf("Scatter 结果错误: %v", out.Data())
	}
}

// BenchmarkArrayGather 测试沿非连续轴读取切片的性能
func BenchmarkArrayGather(b *testing.B) {
	a := Zeros(1000, 8)
	lanes := a.Lanes(0)
	buf := make([]float64, 0, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = a.Gather(lanes[i%len(lanes)], 1000, buf)
	}
}
