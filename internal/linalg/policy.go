package linalg

import (
	"fmt"
	"strings"

	"github.com/born-ml/detkit/internal/kernel"
)

// Policy selects the algorithm that computes a determinant.
//
// The typed API encodes the policy in the function name (Determinant,
// DeterminantQR). Policy values are for callers that choose at run time;
// they go through Resolve.
type Policy int

// Algorithm policies.
const (
	// Simple uses the closed-form kernel. Only defined for extents up to 4.
	Simple Policy = iota
	// QR multiplies the diagonal of R from a QR factorization.
	QR
	// RREF (row echelon reduction) is reserved and has no implementation.
	RREF
)

// policies lists every Policy, in declaration order.
var policies = []Policy{Simple, QR, RREF}

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Simple:
		return "simple"
	case QR:
		return "qr"
	case RREF:
		return "rref"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a case-insensitive name to a Policy.
func ParsePolicy(name string) (Policy, error) {
	for _, p := range policies {
		if strings.EqualFold(name, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// SizeClass partitions matrix extents by kernel availability.
type SizeClass int

// Size classes.
const (
	// Small extents (1..kernel.MaxSize) have a closed-form kernel.
	Small SizeClass = iota
	// Large extents have none.
	Large
)

var sizeClasses = []SizeClass{Small, Large}

// String returns the size class name.
func (c SizeClass) String() string {
	switch c {
	case Small:
		return "small"
	case Large:
		return "large"
	default:
		return fmt.Sprintf("SizeClass(%d)", int(c))
	}
}

// ClassOf classifies an extent.
func ClassOf(n int) SizeClass {
	if n <= kernel.MaxSize {
		return Small
	}
	return Large
}

// Strategy is the computation path a (policy, size class) pair resolves to.
type Strategy int

// Strategies.
const (
	// Unsupported means no path exists; resolution fails.
	Unsupported Strategy = iota
	// DirectKernel calls the closed-form kernel on the raw buffer.
	DirectKernel
	// Factorization takes the product of R's diagonal from a QR factorization.
	Factorization
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Unsupported:
		return "unsupported"
	case DirectKernel:
		return "kernel"
	case Factorization:
		return "qr-factorization"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

type route struct {
	policy Policy
	class  SizeClass
}

// strategies must hold an entry for every (policy, size class) pair;
// init panics otherwise. Unsupported pairs are listed explicitly.
var strategies = map[route]Strategy{
	{Simple, Small}: DirectKernel,
	{Simple, Large}: Unsupported,
	{QR, Small}:     Factorization,
	{QR, Large}:     Factorization,
	{RREF, Small}:   Unsupported,
	{RREF, Large}:   Unsupported,
}

func init() {
	if err := validateStrategies(strategies); err != nil {
		panic(err)
	}
}

func validateStrategies(table map[route]Strategy) error {
	for _, p := range policies {
		for _, c := range sizeClasses {
			if _, ok := table[route{p, c}]; !ok {
				return fmt.Errorf("linalg: no strategy for policy %s on %s matrices", p, c)
			}
		}
	}
	if want := len(policies) * len(sizeClasses); len(table) != want {
		return fmt.Errorf("linalg: strategy table has %d entries, want %d", len(table), want)
	}
	return nil
}

// Resolve returns the strategy for computing an n×n determinant under p.
// Unsupported pairs return ErrUnsupported; values outside the Policy
// enumeration return ErrUnknownPolicy.
func Resolve(p Policy, n int) (Strategy, error) {
	if n < 1 {
		return Unsupported, fmt.Errorf("linalg: invalid matrix extent %d", n)
	}
	s, ok := strategies[route{p, ClassOf(n)}]
	if !ok {
		return Unsupported, fmt.Errorf("%w: %s", ErrUnknownPolicy, p)
	}
	if s == Unsupported {
		return Unsupported, fmt.Errorf("%w (policy %s, %dx%d)", ErrUnsupported, p, n, n)
	}
	return s, nil
}
