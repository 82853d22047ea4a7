package models

import "strings"

// Event is a dated entry on a timeline as returned by the API.
type Event struct {
	EventID         string `json:"eventId"`
	Date            string `json:"date"`
	Description     string `json:"description"`
	TimelineName    string `json:"timelineName"`
	OriginalFileKey string `json:"originalFileKey,omitempty"`
	CroppedFileKey  string `json:"croppedFileKey,omitempty"`
}

// Day is the calendar-day portion of Date, i.e. everything before the
// first "T". Dates without a time part are returned whole.
func (e Event) Day() string {
	day, _, _ := strings.Cut(e.Date, "T")
	return day
}

// MediaKey is the object key to display: the cropped rendition when there
// is one, otherwise the original upload.
func (e Event) MediaKey() string {
	if e.CroppedFileKey != "" {
		return e.CroppedFileKey
	}
	return e.OriginalFileKey
}

// EventPayload is the body of POST /events and PUT /events/{id}. File
// fields hold data URLs and are omitted when no attachment is sent.
type EventPayload struct {
	Date         string `json:"date"`
	Description  string `json:"description"`
	TimelineName string `json:"timelineName"`
	OriginalFile string `json:"originalFile,omitempty"`
	CroppedFile  string `json:"croppedFile,omitempty"`
}
