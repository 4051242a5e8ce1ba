package filter

// CategoryVisibility says whether summary rows bypass the filter.
type CategoryVisibility bool

const (
	CategoriesShown  CategoryVisibility = true
	CategoriesHidden CategoryVisibility = false
)

func (v CategoryVisibility) String() string {
	if v {
		return "shown"
	}
	return "hidden"
}
