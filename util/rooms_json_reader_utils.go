package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"roomscout/models"
)

// ReadRoomsFromJSON loads a room list from JSON on disk.
func ReadRoomsFromJSON(filePath string) ([]models.Room, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var rooms []models.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rooms: %w", err)
	}
	return rooms, nil
}

// ReadRoomsResponseFromJSON loads a rooms listing response (either shape) from
// JSON on disk.
func ReadRoomsResponseFromJSON(filePath string) (*models.RoomsResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.RoomsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RoomsResponse: %w", err)
	}
	return &resp, nil
}

// PrintRoomsResponsePartially prints key fields of a rooms listing response.
func PrintRoomsResponsePartially(resp *models.RoomsResponse) {
	fmt.Printf("Total: %d\n", resp.Total)
	fmt.Printf("Page: %d/%d (limit %d)\n", resp.Page, resp.TotalPages, resp.Limit)
	for i, r := range resp.Data {
		if i >= 3 {
			fmt.Printf("... and %d more\n", len(resp.Data)-i)
			break
		}
		fmt.Printf("Room %s (%s): %.2f/night, sleeps %d\n", r.RoomNumber, r.Type, r.Price, r.MaxOccupancy)
	}
}
