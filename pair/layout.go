package pair

import "unsafe"

// ZeroState reports whether values of E occupy no storage, like struct{}
// or [0]int.
func ZeroState[E any]() bool {
	var e E
	return unsafe.Sizeof(e) == 0
}

// Layout describes the storage of a Pair[T, U] in bytes.
type Layout struct {
	Size   uintptr
	First  uintptr
	Second uintptr
}

// LayoutOf returns the storage layout of Pair[T, U].
func LayoutOf[T, U any]() Layout {
	var p Pair[T, U]
	return Layout{
		Size:   unsafe.Sizeof(p),
		First:  unsafe.Sizeof(p.first),
		Second: unsafe.Sizeof(p.second),
	}
}

// Padding is the number of bytes not used by either element.
func (l Layout) Padding() uintptr {
	return l.Size - l.First - l.Second
}

// Compressed reports whether zero-state elements cost the pair nothing.
// A pair without zero-state elements is always compressed.
func (l Layout) Compressed() bool {
	switch {
	case l.First == 0:
		return l.Size == l.Second
	case l.Second == 0:
		return l.Size == l.First
	default:
		return true
	}
}
