package model

// EventCSV is one row of a bulk-import file.
type EventCSV struct {
	Title string `csv:"title"`
	Date  string `csv:"date"`
	Type  string `csv:"type"`
	Note  string `csv:"note"`
}

func (r EventCSV) Request() EventUpsertRequest {
	return EventUpsertRequest{
		Title: r.Title,
		Date:  r.Date,
		Type:  r.Type,
		Note:  r.Note,
	}
}
