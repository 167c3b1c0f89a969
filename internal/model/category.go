package model

// UFOCategory is one of the sixteen OntoUML ontological categories a legal
// concept can be classified into.
type UFOCategory string

const (
	CategoryKind            UFOCategory = "Kind"
	CategorySubkind         UFOCategory = "Subkind"
	CategoryRole            UFOCategory = "Role"
	CategoryPhase           UFOCategory = "Phase"
	CategoryCategory        UFOCategory = "Category"
	CategoryMixin           UFOCategory = "Mixin"
	CategoryRoleMixin       UFOCategory = "RoleMixin"
	CategoryPhaseMixin      UFOCategory = "PhaseMixin"
	CategoryCollective      UFOCategory = "Collective"
	CategoryFixedCollection UFOCategory = "FixedCollection"
	CategoryRelator         UFOCategory = "Relator"
	CategoryMode            UFOCategory = "Mode"
	CategoryQuality         UFOCategory = "Quality"
	CategoryQuantity        UFOCategory = "Quantity"
	CategoryEvent           UFOCategory = "Event"
	CategoryAbstract        UFOCategory = "Abstract"
)

// categoryPriority lists every category in fixed tie-break order, strongest
// first. Arg-max ties during classification are resolved by this order so
// that identical inputs always produce identical output.
var categoryPriority = []UFOCategory{
	CategoryKind,
	CategoryEvent,
	CategoryRole,
	CategoryRelator,
	CategoryMode,
	CategoryQuantity,
	CategoryQuality,
	CategoryCollective,
	CategoryPhase,
	CategorySubkind,
	CategoryCategory,
	CategoryMixin,
	CategoryFixedCollection,
	CategoryRoleMixin,
	CategoryPhaseMixin,
	CategoryAbstract,
}

// NumCategories is the size of the closed taxonomy.
const NumCategories = 16

// AllCategories returns the sixteen categories in tie-break priority order.
// The returned slice is a copy and safe to modify.
func AllCategories() []UFOCategory {
	out := make([]UFOCategory, len(categoryPriority))
	copy(out, categoryPriority)
	return out
}

// Priority returns the tie-break rank of the category; lower wins. Unknown
// values rank last.
func (c UFOCategory) Priority() int {
	for i, cat := range categoryPriority {
		if cat == c {
			return i
		}
	}
	return len(categoryPriority)
}

// IsValid reports whether c is a member of the closed taxonomy.
func (c UFOCategory) IsValid() bool {
	return c.Priority() < len(categoryPriority)
}

// ParseCategory maps a string to a UFOCategory.
func ParseCategory(s string) (UFOCategory, bool) {
	c := UFOCategory(s)
	if c.IsValid() {
		return c, true
	}
	return "", false
}

func (c UFOCategory) String() string {
	return string(c)
}
