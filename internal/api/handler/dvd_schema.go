package handler

import "github.com/aegean-rentals/dvd-catalog/internal/core/domain"

type createDvdRequest struct {
	Title    string `json:"title"    validate:"required"`
	Genre    string `json:"genre"    validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// updateDvdRequest is a partial patch: nil fields are left unchanged.
// The service rejects a patch carrying neither field.
type updateDvdRequest struct {
	Quantity *int    `json:"quantity" validate:"omitempty,gt=0"`
	Genre    *string `json:"genre"`
}

type dvdResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	Quantity int    `json:"quantity"`
}

func toDvdResponse(d *domain.Dvd) dvdResponse {
	return dvdResponse{
		ID:       d.ID,
		Title:    d.Title,
		Genre:    string(d.Genre),
		Quantity: d.Quantity,
	}
}

func toDvdResponses(dvds []*domain.Dvd) []dvdResponse {
	out := make([]dvdResponse, len(dvds))
	for i, d := range dvds {
		out[i] = toDvdResponse(d)
	}
	return out
}
