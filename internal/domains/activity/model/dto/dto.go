package dto

import (
	"luxeroom/internal/domains/activity/model"
)

type EntryResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	StaffName string `json:"staffName"`
	Type      string `json:"type"`
}

func (r *EntryResponse) FromModel(entry model.Entry) {
	r.ID = entry.ID
	r.Message = entry.Message
	r.Timestamp = entry.Timestamp
	r.StaffName = entry.StaffName
	r.Type = string(entry.Type)
}

type GetActivityResponse struct {
	Activity []EntryResponse `json:"activity"`
}

func (r *GetActivityResponse) FromModels(models []model.Entry) {
	r.Activity = make([]EntryResponse, len(models))
	for i, mod := range models {
		r.Activity[i].FromModel(mod)
	}
}
