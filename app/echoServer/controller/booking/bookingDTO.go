package booking

import bookingsvc "github.com/BriscanCatalin/RentalApp/service/booking"

type CreateBookingReq struct {
	ID         string  `json:"id" validate:"required"`
	CarID      string  `json:"carId" validate:"required"`
	UserID     string  `json:"userId" validate:"required"`
	StartDate  string  `json:"startDate" validate:"required"`
	EndDate    string  `json:"endDate" validate:"required"`
	TotalPrice float64 `json:"totalPrice" validate:"gte=0"`
	Status     string  `json:"status" validate:"required"`
}

func (r CreateBookingReq) toParams() bookingsvc.CreateParams {
	return bookingsvc.CreateParams{
		ID:         r.ID,
		CarID:      r.CarID,
		UserID:     r.UserID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		TotalPrice: r.TotalPrice,
		Status:     r.Status,
	}
}
