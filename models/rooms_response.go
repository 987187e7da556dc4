// models/rooms_response.go
package models

import (
	"bytes"
	"encoding/json"
)

// RoomsResponse matches the rooms listing response. The backend answers with
// either a paginated envelope or the legacy bare array of rooms; UnmarshalJSON
// accepts both and normalizes the legacy shape into the envelope fields.
type RoomsResponse struct {
	Data       []Room `json:"data"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
}

func (r *RoomsResponse) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimLeft(b, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		// legacy shape: a bare array is a single complete page
		var rooms []Room
		if err := json.Unmarshal(b, &rooms); err != nil {
			return err
		}
		r.Data = rooms
		r.Total = len(rooms)
		r.Page = 1
		r.Limit = len(rooms)
		r.TotalPages = 1
		return nil
	}

	type envelope RoomsResponse
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	*r = RoomsResponse(env)
	// missing numeric fields stay 0, except page which is 1-based
	if r.Page == 0 {
		r.Page = 1
	}
	return nil
}

// PageMeta returns the pagination metadata carried by the response.
func (r *RoomsResponse) PageMeta() Pagination {
	return Pagination{
		Total:      r.Total,
		Page:       r.Page,
		Limit:      r.Limit,
		TotalPages: r.TotalPages,
	}
}
