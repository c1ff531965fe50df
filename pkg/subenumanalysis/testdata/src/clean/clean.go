package clean

//subenum:Dog,Small
//subenum:derive String
type Canis int

const (
	CanisWolf Canis = iota
	//subenum:Dog
	CanisBoxer
	//subenum:Dog,Small
	CanisWestie
)

// Unannotated types and constants are ignored.
type Color int

const ColorRed Color = 0
