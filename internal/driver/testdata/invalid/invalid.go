package invalid

//subenum:Dog,Dog
type Canis int

const (
	//subenum:Dogg
	CanisBoxer Canis = iota
	CanisWolf
)

type Felis int

const (
	//subenum:Small
	FelisKitten Felis = iota
)
