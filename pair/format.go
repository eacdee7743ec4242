package pair

import "fmt"

// String return a string
// format: "Pair(%v, %v)", p.First(), p.Second()
func (p Pair[T, U]) String() string {
	return fmt.Sprintf("Pair(%v, %v)", p.first, p.second)
}
