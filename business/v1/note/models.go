package note

import (
	"github.com/ribgsilva/notebook/persistence/v1/note"
)

// TimeLayout formats createdAt and updatedAt, it sorts lexicographically in time order
const TimeLayout = "2006-01-02 15:04:05"

// titleLength is how many characters of the content make the title
const titleLength = 30

type Note struct {
	Id        int64  `json:"id" example:"1700000000000"`
	Title     string `json:"title" example:"Buy milk"`
	Content   string `json:"content" example:"Buy milk"`
	CreatedAt string `json:"createdAt" example:"2024-01-02 15:04:05"`
	UpdatedAt string `json:"updatedAt" example:"2024-01-02 15:04:05"`
}

// Event is a change request received from the messaging layer
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type NewNote struct {
	Content string `json:"content" example:"Buy milk"`
}

type UpdateNote struct {
	Id      int64  `json:"id" example:"1700000000000"`
	Content string `json:"content" example:"Buy oat milk"`
}

type DeleteNote struct {
	Id int64 `json:"id" example:"1700000000000"`
}

func fromRecords(records []note.Note) []Note {
	notes := make([]Note, 0, len(records))
	for _, r := range records {
		notes = append(notes, Note(r))
	}
	return notes
}

func toRecords(notes []Note) []note.Note {
	records := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		records = append(records, note.Note(n))
	}
	return records
}
