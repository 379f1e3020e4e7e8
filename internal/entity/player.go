package entity

type Side int

const (
	SideOne Side = iota + 1
	SideTwo
)

func (that Side) String() string {
	switch that {
	case SideOne:
		return "P1"
	case SideTwo:
		return "P2"
	default:
		return "Unknown"
	}
}

func (that Side) Opponent() Side {
	if that == SideOne {
		return SideTwo
	}

	return SideOne
}
