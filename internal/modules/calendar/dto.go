package calendar

type DayHoursInput struct {
	Weekday   int    `json:"weekday"`
	Open      bool   `json:"open"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type SaveWeekRequest struct {
	Days []DayHoursInput `json:"days" binding:"required"`
}

type AddExceptionRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}
