package model

type Car struct {
	ID           string   `json:"id"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Type         string   `json:"type"`
	FuelType     string   `json:"fuel_type"`
	Transmission string   `json:"transmission"`
	Seats        int      `json:"seats"`
	PricePerDay  float64  `json:"price_per_day"`
	Location     string   `json:"location"`
	Rating       *float64 `json:"rating"`
	ReviewCount  int      `json:"review_count"`
	Images       []string `json:"images"`
	Features     []string `json:"features"`
	Available    bool     `json:"available"`
	Description  string   `json:"description"`
}
