package valid

//subenum:Dog,Small
//subenum:derive String,Values
type Canis int

const (
	CanisWolf Canis = iota
	//subenum:Dog
	CanisBoxer
	//subenum:Dog
	CanisGoldenRetriever
	//subenum:Dog,Small
	CanisWestie
)

//subenum:Round
type Shape interface{ isShape() }

//subenum:Round
type Circle struct{ Radius float64 }

type Square struct{ Side float64 }

func (Circle) isShape() {}
func (Square) isShape() {}
