package maths

import "errors"

// 数值精度阈值
const (
	Epsilon       = 2.220446049250313e-16 // float64 机器精度
	ZeroTolerance = 1e-10                 // 归一化时视为零的阈值
)

var (
	// ErrSolverFailed 零空间求解失败（如SVD未收敛）
	ErrSolverFailed = errors.New("maths: null space solver failed")
	// ErrShapeMismatch 数组形状与数据长度不一致
	ErrShapeMismatch = errors.New("maths: shape mismatch")
)

// NullSpaceSolver 零空间求解接口
// 返回的每个向量长度为 m.Cols()，满足 m·v = 0，
// 向量数量必须等于 m.Cols() - rank(m)
type NullSpaceSolver interface {
	// NullSpace 计算矩阵右零空间的一组基（按列返回）
	NullSpace(m *Matrix) ([][]float64, error)
}
