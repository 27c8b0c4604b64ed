package models

// PostcodeRecord is one row of the postcode reference table.
// Field order is part of the wire format: Postcode, Locality, State.
type PostcodeRecord struct {
	Postcode string `json:"Postcode" gorm:"column:postcode" example:"2000"`
	Locality string `json:"Locality" gorm:"column:locality" example:"SYDNEY"`
	State    string `json:"State" gorm:"column:state" example:"NSW"`
}

// LookupRequest carries the raw comma-separated postcode list of a batch call
type LookupRequest struct {
	Postcodes string `json:"postcodes" form:"postcodes" example:"2000,3000,abcd"`
}

// ErrorEntry is the per-postcode error placed in a lookup result
type ErrorEntry struct {
	Error string `json:"error" example:"404, Postcode 9999 not found in the database"`
}

// ErrorResponse is the body returned when the whole call fails
type ErrorResponse struct {
	Error string `json:"error" example:"You entered more than 5 postcodes."`
}
