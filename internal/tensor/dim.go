package tensor

import "fmt"

// Dim is a type-level axis extent.
//
// Implementations are zero-size types whose Extent never changes. Callers
// may declare their own for sizes the package does not provide:
//
//	type D12 struct{}
//
//	func (D12) Extent() int { return 12 }
type Dim interface {
	Extent() int
}

// SmallDim is an extent the closed-form determinant kernel supports (1..4).
// Its type set is exactly D1..D4; types embedding one of them do not
// satisfy it.
type SmallDim interface {
	D1 | D2 | D3 | D4
	Dim
}

// Provided dimensions.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
)

func (D1) Extent() int { return 1 }
func (D2) Extent() int { return 2 }
func (D3) Extent() int { return 3 }
func (D4) Extent() int { return 4 }
func (D5) Extent() int { return 5 }
func (D6) Extent() int { return 6 }
func (D7) Extent() int { return 7 }
func (D8) Extent() int { return 8 }

// Compile-time checks.
var (
	_ Dim = D1{}
	_ Dim = D8{}
)

// ExtentOf returns the extent carried by the dimension type N.
func ExtentOf[N Dim]() int {
	return extentOf[N]()
}

func extentOf[N Dim]() int {
	var n N
	e := n.Extent()
	if e <= 0 {
		panic(fmt.Sprintf("dimension %T has non-positive extent %d", n, e))
	}
	return e
}
