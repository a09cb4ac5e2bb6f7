package libdiff

// OpKind classifies one alignment operation produced by Align.
type OpKind int

const (
	OpEqual OpKind = iota
	OpInsert
	OpDelete
	OpMoveFrom
	OpMoveTo
)

func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpMoveFrom:
		return "moveFrom"
	case OpMoveTo:
		return "moveTo"
	}
	return "<unknown op>"
}

// Op is one step of a block sequence alignment. Base is the baseline
// index for equal, delete and moveFrom steps, -1 otherwise. Cur is the
// current index for equal, insert and moveTo steps, -1 otherwise.
// Pair is a nonzero key shared by the two sides of one move.
type Op struct {
	Kind OpKind
	Base int
	Cur  int
	Pair int
}
