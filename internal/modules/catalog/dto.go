package catalog

type UpsertServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
	Price           float64 `json:"price" binding:"gte=0"`
	Description     string  `json:"description"`
}
