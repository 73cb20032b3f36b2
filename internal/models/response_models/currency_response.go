package response_models

type ConversionResponse struct {
	Base      string  `json:"base"`
	Target    string  `json:"target"`
	Amount    float64 `json:"amount"`
	Rate      float64 `json:"rate"`
	Converted float64 `json:"converted"`
}
