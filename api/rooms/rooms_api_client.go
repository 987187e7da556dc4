package rooms

import (
	"roomscout/api"
	"roomscout/models"
)

// RoomsApiClient embeds the common HTTPClient
type RoomsApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewRoomsApiClient creates a new instance of RoomsApiClient
func NewRoomsApiClient(httpClient *api.HTTPClient) *RoomsApiClient {
	return &RoomsApiClient{
		HTTPClient: httpClient,
	}
}

// ListRooms retrieves one page of rooms matching the filter params. The
// response shape (envelope or legacy array) is normalized during decoding.
func (c *RoomsApiClient) ListRooms(params models.RoomFilterParams) (*models.RoomsResponse, error) {
	var response models.RoomsResponse
	err := c.Get("/rooms", params.ToValues(), &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetRoom retrieves a room given a room id
func (c *RoomsApiClient) GetRoom(roomID string) (*models.Room, error) {
	var response models.Room
	err := c.Get("/rooms/"+roomID, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetAllRooms performs the unfiltered bootstrap call. The backend still
// answers this route with the legacy bare-array shape.
func (c *RoomsApiClient) GetAllRooms() ([]models.Room, error) {
	var response models.RoomsResponse
	err := c.Get("/rooms/all", nil, &response)
	if err != nil {
		return nil, err
	}
	return response.Data, nil
}
