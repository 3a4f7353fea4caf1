package model

// Set represents a scheduled performance on one of the festival
// stages.  StartTime and EndTime define the time window of the
// performance; both are local datetimes without a timezone, carried
// as ISO strings ("2006-01-02T15:04:05") on the wire.  The storage
// layer keeps them in DB format ("2006-01-02 15:04:05", see times.go)
// so that string comparison matches chronological order.
//
// Fields:
//  ID          – primary key identifier.
//  Artist      – performing artist, required.
//  Stage       – stage name, required.
//  StartTime   – when the set begins (ISO datetime string).
//  EndTime     – when the set ends.  The original system never
//                enforced EndTime > StartTime and neither do we.
//  Description – optional free text, empty string when omitted.
//  ImageURL    – optional artist image, null when absent.
type Set struct {
	ID          uint64  `json:"id"`          // sets.id
	Artist      string  `json:"artist"`      // sets.artist
	Stage       string  `json:"stage"`       // sets.stage
	StartTime   string  `json:"start_time"`  // sets.start_time (ISO on the wire)
	EndTime     string  `json:"end_time"`    // sets.end_time (ISO on the wire)
	Description string  `json:"description"` // sets.description
	ImageURL    *string `json:"image_url"`   // sets.image_url (nullable)
}

// FestivalDay is one distinct calendar day of the festival, derived
// from the start times of all stored sets.  Date is the ISO day
// ("2006-01-02") and Label a human-readable form such as
// "Saturday, April 26, 2025".
type FestivalDay struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}
