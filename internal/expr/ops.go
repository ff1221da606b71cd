package expr

import "github.com/born-ml/detkit/internal/tensor"

// binaryOp selects the element-wise operation of a binary node.
type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
)

func (op binaryOp) String() string {
	switch op {
	case opAdd:
		return "add"
	case opSub:
		return "sub"
	case opMul:
		return "mul"
	default:
		return "unknown"
	}
}

// binary is an element-wise node over two same-shaped operands.
type binary[T tensor.Float, S tensor.Shape] struct {
	op   binaryOp
	a, b Expr[T, S]
}

// Add returns the lazy element-wise sum a + b.
func Add[T tensor.Float, S tensor.Shape](a, b Expr[T, S]) Expr[T, S] {
	return &binary[T, S]{op: opAdd, a: a, b: b}
}

// Sub returns the lazy element-wise difference a - b.
func Sub[T tensor.Float, S tensor.Shape](a, b Expr[T, S]) Expr[T, S] {
	return &binary[T, S]{op: opSub, a: a, b: b}
}

// Mul returns the lazy element-wise (Hadamard) product a ⊙ b.
func Mul[T tensor.Float, S tensor.Shape](a, b Expr[T, S]) Expr[T, S] {
	return &binary[T, S]{op: opMul, a: a, b: b}
}

func (n *binary[T, S]) Eval() tensor.Array[T, S] {
	a := n.a.Eval().Data()
	b := n.b.Eval().Data()

	out := tensor.Zeros[T, S]()
	dst := out.Data()
	switch n.op {
	case opAdd:
		for i := range dst {
			dst[i] = a[i] + b[i]
		}
	case opSub:
		for i := range dst {
			dst[i] = a[i] - b[i]
		}
	case opMul:
		for i := range dst {
			dst[i] = a[i] * b[i]
		}
	default:
		panic("expr: unknown binary op " + n.op.String())
	}
	return out
}

// scale multiplies every element by a constant.
type scale[T tensor.Float, S tensor.Shape] struct {
	alpha T
	x     Expr[T, S]
}

// Scale returns the lazy product alpha · x.
func Scale[T tensor.Float, S tensor.Shape](alpha T, x Expr[T, S]) Expr[T, S] {
	return &scale[T, S]{alpha: alpha, x: x}
}

// Neg returns the lazy negation -x.
func Neg[T tensor.Float, S tensor.Shape](x Expr[T, S]) Expr[T, S] {
	return &scale[T, S]{alpha: -1, x: x}
}

func (n *scale[T, S]) Eval() tensor.Array[T, S] {
	src := n.x.Eval().Data()

	out := tensor.Zeros[T, S]()
	dst := out.Data()
	for i, v := range src {
		dst[i] = n.alpha * v
	}
	return out
}

// matMul is the matrix product of two N×N operands.
type matMul[T tensor.Float, N tensor.Dim] struct {
	a, b Expr[T, tensor.Square[N]]
}

// MatMul returns the lazy matrix product a · b.
func MatMul[T tensor.Float, N tensor.Dim](a, b Expr[T, tensor.Square[N]]) Expr[T, tensor.Square[N]] {
	return &matMul[T, N]{a: a, b: b}
}

func (m *matMul[T, N]) Eval() tensor.Array[T, tensor.Square[N]] {
	a := m.a.Eval().Data()
	b := m.b.Eval().Data()
	n := tensor.ExtentOf[N]()

	out := tensor.Zeros[T, tensor.Square[N]]()
	dst := out.Data()
	// i-k-j order keeps the inner loop on contiguous rows of b and dst.
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			aik := a[i*n+k]
			for j := 0; j < n; j++ {
				dst[i*n+j] += aik * b[k*n+j]
			}
		}
	}
	return out
}

// transpose swaps the two axes of an N×N operand.
type transpose[T tensor.Float, N tensor.Dim] struct {
	x Expr[T, tensor.Square[N]]
}

// Transpose returns the lazy transpose xᵀ.
func Transpose[T tensor.Float, N tensor.Dim](x Expr[T, tensor.Square[N]]) Expr[T, tensor.Square[N]] {
	return &transpose[T, N]{x: x}
}

func (t *transpose[T, N]) Eval() tensor.Array[T, tensor.Square[N]] {
	src := t.x.Eval().Data()
	n := tensor.ExtentOf[N]()

	out := tensor.Zeros[T, tensor.Square[N]]()
	dst := out.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst[j*n+i] = src[i*n+j]
		}
	}
	return out
}
