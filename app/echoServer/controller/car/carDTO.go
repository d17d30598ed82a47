package car

import carrepo "github.com/BriscanCatalin/RentalApp/repository/car"

type FilterCarsReq struct {
	Type         string    `json:"type"`
	PriceRange   []float64 `json:"priceRange" validate:"omitempty,len=2"`
	Transmission string    `json:"transmission"`
	FuelType     string    `json:"fuelType"`
	Seats        int       `json:"seats" validate:"omitempty,gt=0"`
	SearchQuery  string    `json:"searchQuery"`
}

func (r FilterCarsReq) toFilter() carrepo.Filter {
	return carrepo.Filter{
		Type:         r.Type,
		PriceRange:   r.PriceRange,
		Transmission: r.Transmission,
		FuelType:     r.FuelType,
		Seats:        r.Seats,
		SearchQuery:  r.SearchQuery,
	}
}
