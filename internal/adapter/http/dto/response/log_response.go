package response

import (
	"time"

	"custodia_cheques/internal/domain/entities"
)

type LogEntryResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	User      string    `json:"user"`
}

func FromLog(entries []entities.LogEntry) []LogEntryResponse {
	out := make([]LogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, LogEntryResponse{Timestamp: e.Timestamp, Message: e.Message, User: e.User})
	}
	return out
}
