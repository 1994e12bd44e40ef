package handler

import (
	"storefront/internal/usecase"
)

// statusView is the JSON shape of a short-lived status or toast message.
type statusView struct {
	Text    string `json:"text"`
	Success bool   `json:"success"`
}

func newStatusView(msg *usecase.StatusMessage) *statusView {
	if msg == nil {
		return nil
	}

	return &statusView{Text: msg.Text, Success: msg.Success}
}
