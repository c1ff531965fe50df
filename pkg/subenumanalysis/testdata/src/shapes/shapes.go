package shapes

//subenum:Round
type Shape interface{ isShape() }

//subenum:Round
type Circle struct{ Radius float64 }

type Square struct{ Side float64 }

func (Circle) isShape() {}
func (Square) isShape() {}

//subenum:Round
type Open interface{ Area() float64 } // want `unsupported_enum: Open cannot declare subsets: a union enumeration must be a sealed interface`

//subenum:Flat
type Plane int // want `subset_name_taken: subset Flat would generate PlaneToFlat, which is already declared in package shapes`

const (
	//subenum:Flat
	PlaneXY Plane = iota
)

func PlaneToFlat() {}

var _ = PlaneXY

//subenum:Steep,steep
type Tilt int // want `subset_name_taken: subset steep differs from subset Steep only in letter case`

const (
	//subenum:Steep
	TiltSheer Tilt = iota
)

var _ = TiltSheer
