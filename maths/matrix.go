package maths

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix 稠密矩阵（行优先存储）
// 与 mat.Dense 不同，允许行数或列数为0
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix 创建指定维度的零矩阵
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic("invalid matrix dimensions: cannot be negative")
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// NewMatrixFromRows 从二维切片构建矩阵
func NewMatrixFromRows(cols int, rows [][]float64) *Matrix {
	m := NewMatrix(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("row %d length mismatch: got %d, want %d", i, len(row), cols))
		}
		copy(m.data[i*cols:], row)
	}
	return m
}

// checkBounds 越界检查
func (m *Matrix) checkBounds(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix index out of range: row=%d, col=%d (rows=%d, cols=%d)", row, col, m.rows, m.cols))
	}
}

// Rows 行数
func (m *Matrix) Rows() int { return m.rows }

// Cols 列数
func (m *Matrix) Cols() int { return m.cols }

// IsEmpty 行数或列数为0
func (m *Matrix) IsEmpty() bool { return m.rows == 0 || m.cols == 0 }

// Get 获取元素（越界panic）
func (m *Matrix) Get(row, col int) float64 {
	m.checkBounds(row, col)
	return m.data[row*m.cols+col]
}

// Set 设置元素（越界panic）
func (m *Matrix) Set(row, col int, value float64) {
	m.checkBounds(row, col)
	m.data[row*m.cols+col] = value
}

// Row 获取行副本
func (m *Matrix) Row(row int) []float64 {
	if row < 0 || row >= m.rows {
		panic(fmt.Sprintf("matrix row out of range: %d (rows=%d)", row, m.rows))
	}
	return append([]float64(nil), m.data[row*m.cols:(row+1)*m.cols]...)
}

// Col 获取列副本
func (m *Matrix) Col(col int) []float64 {
	if col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix col out of range: %d (cols=%d)", col, m.cols))
	}
	out := make([]float64, m.rows)
	for i := range out {
		out[i] = m.data[i*m.cols+col]
	}
	return out
}

// ToRows 转换为二维切片
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Clone 深拷贝
func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, data: append([]float64(nil), m.data...)}
}

// SwapRows 交换两行
func (m *Matrix) SwapRows(r1, r2 int) {
	if r1 == r2 {
		return
	}
	for j := 0; j < m.cols; j++ {
		m.data[r1*m.cols+j], m.data[r2*m.cols+j] = m.data[r2*m.cols+j], m.data[r1*m.cols+j]
	}
}

// MulVec 矩阵向量乘法（A*x，返回新切片）
func (m *Matrix) MulVec(x []float64) []float64 {
	if len(x) != m.cols {
		panic(fmt.Sprintf("vector dimension mismatch: x length=%d, matrix cols=%d", len(x), m.cols))
	}
	result := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		sum := 0.0
		for j := 0; j < m.cols; j++ {
			sum += m.data[i*m.cols+j] * x[j]
		}
		result[i] = sum
	}
	return result
}

// Dense 转换为 gonum 矩阵，空矩阵返回 nil
func (m *Matrix) Dense() *mat.Dense {
	if m.IsEmpty() {
		return nil
	}
	return mat.NewDense(m.rows, m.cols, append([]float64(nil), m.data...))
}

// String 格式化输出矩阵
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteString(fmt.Sprint(m.data[i*m.cols : (i+1)*m.cols]))
		sb.WriteByte('\n')
	}
	return sb.String()
}
