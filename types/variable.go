package types

// Variable 物理变量（名称 + 量纲），创建后不可修改
type Variable struct {
	Name       string          // 变量名
	Dimensions DimensionVector // 量纲向量
}

// NewVariable 创建变量
func NewVariable(name string, dims ...Dim) Variable {
	return Variable{Name: name, Dimensions: NewDimensionVector(dims...)}
}

// String 格式化输出，如 "velocity = L^1 * T^-1"
func (v Variable) String() string {
	return v.Name + " = " + v.Dimensions.String()
}
