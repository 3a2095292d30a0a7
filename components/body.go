package components

// Body is a scavengeable carcass. It keeps its own copy of the nutritional
// value so scavenging never needs the archived individual.
type Body struct {
	ID               string  `json:"id"`
	NutritionalValue float64 `json:"nutritional_value"`
	DeathDay         int     `json:"death_day"`
}

// BodyOf records the body of a freshly dead individual.
func BodyOf(ind *Individual, day int) Body {
	return Body{
		ID:               ind.ID,
		NutritionalValue: ind.Traits.NutritionalValue(),
		DeathDay:         day,
	}
}
