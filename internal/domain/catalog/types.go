package catalog

// Category groups the services a visitor can bundle into a package.
type Category string

const (
	CategoryLodging   Category = "lodging"
	CategoryFood      Category = "food"
	CategoryTours     Category = "tours"
	CategoryAstronomy Category = "astronomy"
	CategoryPOI       Category = "poi"
)

// Categories in display order. Views and package breakdowns follow this order.
var Categories = []Category{
	CategoryLodging,
	CategoryFood,
	CategoryTours,
	CategoryAstronomy,
	CategoryPOI,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryLodging, CategoryFood, CategoryTours, CategoryAstronomy, CategoryPOI:
		return true
	default:
		return false
	}
}
