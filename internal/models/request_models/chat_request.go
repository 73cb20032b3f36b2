package request_models

type ChatMessageRequest struct {
	Message     string `json:"message" binding:"required"`
	Destination string `json:"destination"`
	TripDate    string `json:"trip_date"` // YYYY-MM-DD
}

type TravelTipsRequest struct {
	Destination string `json:"destination" binding:"required"`
	TripDate    string `json:"trip_date"`
}
