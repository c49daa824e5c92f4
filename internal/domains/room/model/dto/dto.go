package dto

import (
	"luxeroom/internal/domains/room/model"
)

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Ready Cleaning Occupied 'Out of Order'"`
}

type RoomResponse struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	LastUpdated *int64 `json:"lastUpdated,omitempty"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.Number = room.Number
	r.Type = string(room.Type)
	r.Status = string(room.Status)
	r.LastUpdated = room.LastUpdated
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
