package types

type EventRequest struct {
	UnitNumber      string `json:"unit_number"`
	CardBatch       string `json:"card_batch"`
	CardNumber      string `json:"card_number"`
	AccessTimestamp string `json:"access_timestamp,omitempty"`
}

// Record converts an API event into the canonical row shape the
// aggregators and the archive consume.
func (e EventRequest) Record() Record {
	return Record{
		FieldFirstName: e.UnitNumber,
		FieldBatch:     e.CardBatch,
		FieldNumber:    e.CardNumber,
		FieldTimestamp: e.AccessTimestamp,
	}
}

type EventResponse struct {
	OK         bool   `json:"ok"`
	UnitNumber string `json:"unit_number"`
	ServerTime string `json:"server_time"`
}
