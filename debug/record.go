package debug

import (
	"encoding/json"
	"io"
)

// Record 记录分析过程的各阶段结果
type Record struct {
	Variables    []string    // 变量定义
	Fundamentals []string    // 基本量纲
	Matrix       [][]float64 // 量纲矩阵
	NullSpace    [][]float64 // 归一化零空间（按列）
	Groups       []string    // 无量纲数
	Updates      int         // 记录次数
}

func (Record) IsDebug() bool    { return true }
func (Record) SetDebug(is bool) {}

// Update 记录数据
func (list *Record) Update(src Source) {
	list.Variables = list.Variables[:0]
	for _, v := range src.Variables() {
		list.Variables = append(list.Variables, v.String())
	}
	list.Fundamentals = src.Fundamentals()
	list.Matrix = src.DimensionalMatrix().ToRows()
	list.NullSpace = src.NullSpace()
	list.Groups = list.Groups[:0]
	for _, g := range src.Groups() {
		list.Groups = append(list.Groups, g.String())
	}
	list.Updates++
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
