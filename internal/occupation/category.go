package occupation

// Category is one of the values written to the occupation column.
type Category string

const (
	Student  Category = "Studenten"
	Employed Category = "Angestellte"
	Other    Category = "Andere"
	None     Category = ""
)

// EmptyLabel is shown in reports in place of the empty category.
const EmptyLabel = "(leer)"

// DisplayOrder is the fixed order categories are reported in.
var DisplayOrder = []Category{Student, Employed, Other, None}

// Label returns the display text for c.
func (c Category) Label() string {
	if c == None {
		return EmptyLabel
	}
	return string(c)
}

// Known reports whether c is one of the four output categories.
func (c Category) Known() bool {
	switch c {
	case Student, Employed, Other, None:
		return true
	default:
		return false
	}
}
