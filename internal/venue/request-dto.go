package venue

type LocationFilters struct {
	Type string `form:"type" binding:"omitempty,oneof=restroom food stage parking exit service info"`
}
