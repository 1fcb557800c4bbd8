package buckingham

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch 输入值数量与变量数量不一致
	ErrShapeMismatch = errors.New("buckingham: shape mismatch")
	// ErrAxisOutOfRange 批量计算的轴超出数组维数
	ErrAxisOutOfRange = errors.New("buckingham: axis out of range")
	// ErrNoGroups 不存在无量纲数，无法构建 gonum 矩阵结果
	ErrNoGroups = errors.New("buckingham: no dimensionless groups")
)

// ShapeError 形状错误详情
type ShapeError struct {
	Axis int // 出错的轴（标量计算为0）
	Got  int // 实际长度
	Want int // 期望长度（变量数量）
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: axis %d has length %d, want %d", ErrShapeMismatch, e.Axis, e.Got, e.Want)
}

func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }
