package ast

// TypeMarker is the shallow type lattice shared by the AST's declared
// type markers and the semantic analyzer's compatibility checks. ANY is
// compatible with every other marker in both directions.
type TypeMarker int

const (
	ANY TypeMarker = iota
	INT
	FLOAT
	STRING
	BOOLEAN
	LIST
	NONE
)

func (t TypeMarker) String() string {
	switch t {
	case ANY:
		return "any"
	case INT:
		return "int"
	case FLOAT:
		return "float"
	case STRING:
		return "str"
	case BOOLEAN:
		return "bool"
	case LIST:
		return "list"
	case NONE:
		return "none"
	default:
		return "?"
	}
}
