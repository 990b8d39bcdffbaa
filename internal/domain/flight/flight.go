package flight

// Flight is an immutable catalog record fetched per query. Identity is ID;
// the other fields are denormalized for display (carrier name comes from the
// carriers relation).
type Flight struct {
	ID              int64
	Date            Date
	CarrierName     string
	FlightNum       string
	OriginCity      string
	DestCity        string
	DurationMinutes int
}
