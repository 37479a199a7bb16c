// Package boxes converts unit counts into 4/2/1 box breakdowns.
package boxes

// boxSizes is the fixed divisor cascade, largest first. Because each size
// divides the previous one, the greedy cascade is also count-minimal.
var boxSizes = [...]int{4, 2, 1}

// Breakdown describes how many boxes of each size carry a unit count.
// For any non-negative input, Box2 and Box1 are at most 1: the remainder
// after a division step is always smaller than the divisor that produced it.
type Breakdown struct {
	Box4 int
	Box2 int
	Box1 int
}

// Decompose splits amount into boxes greedily, largest size first.
// Zero and negative amounts yield the zero Breakdown; there are no error
// conditions.
func Decompose(amount int) Breakdown {
	if amount <= 0 {
		return Breakdown{}
	}

	counts := make([]int, len(boxSizes))
	remaining := amount
	for i, size := range boxSizes {
		counts[i] = remaining / size
		remaining %= size
	}

	return Breakdown{Box4: counts[0], Box2: counts[1], Box1: counts[2]}
}

// Units recomposes the total unit count the breakdown carries.
func (b Breakdown) Units() int {
	return b.Box4*4 + b.Box2*2 + b.Box1
}
