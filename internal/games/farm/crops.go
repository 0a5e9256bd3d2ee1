package farm

// Crop is a planted seed that matures by day count.
type Crop struct {
	PlantedDay int `json:"planted_day"`
	GrowDays   int `json:"grow_days"`
}

// Stage returns the growth stage in [0, GrowDays].
func (c Crop) Stage(currentDay int) int {
	days := currentDay - c.PlantedDay
	if days < 0 {
		days = 0
	}
	if days > c.GrowDays {
		days = c.GrowDays
	}
	return days
}

// IsMature reports whether the crop can be harvested.
func (c Crop) IsMature(currentDay int) bool {
	return currentDay-c.PlantedDay >= c.GrowDays
}
