package establishment

type Category string

const (
	CategoryRestaurant Category = "RESTAURANT"
	CategoryCafe       Category = "CAFE"
	CategoryStore      Category = "STORE"
	CategoryHotel      Category = "HOTEL"
	CategoryService    Category = "SERVICE"
	CategoryLeisure    Category = "LEISURE"
	CategoryHealth     Category = "HEALTH"
	CategoryOther      Category = "OTHER"
)

var categories = map[Category]bool{
	CategoryRestaurant: true,
	CategoryCafe:       true,
	CategoryStore:      true,
	CategoryHotel:      true,
	CategoryService:    true,
	CategoryLeisure:    true,
	CategoryHealth:     true,
	CategoryOther:      true,
}

func IsValidCategory(c string) bool {
	return categories[Category(c)]
}
