package kennel

//subenum:Dog,Small,Dog
type Canis int // want `duplicate_subset_name: duplicate subset name "Dog"`

const (
	CanisWolf Canis = iota
	//subenum:Dogg
	CanisBoxer // want `unknown_subset_name: variant Boxer is tagged with unknown subset name "Dogg" \(did you mean Dog\?\)`
	//subenum:Small
	CanisWestie
	//subenum:
	CanisPug // want `warning: empty_variant_tag: CanisPug has an empty //subenum: tag`
)

//subenum:
type Felis int // want `empty_subset_declaration: Felis declares no subsets`

const FelisKitten Felis = 0

type Bird int

const (
	//subenum:Small
	BirdFinch Bird = iota // want `orphan_variant_tag: BirdFinch is tagged //subenum:Small but its type declares no subsets`
)

//subenum:Pair
type Box[T any] int // want `unsupported_enum: Box cannot declare subsets: generic enumerations are not supported`
