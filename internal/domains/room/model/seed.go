package model

// Seed returns the fixed room inventory. The list mirrors the physical
// property: six twin rooms and seven double rooms across three floors.
func Seed() []Room {
	return []Room{
		// Twin rooms
		{ID: "r101", Number: "101", Type: TypeTwin, Status: StatusReady},
		{ID: "r102", Number: "102", Type: TypeTwin, Status: StatusReady},
		{ID: "r103", Number: "103", Type: TypeTwin, Status: StatusReady},
		{ID: "r202", Number: "202", Type: TypeTwin, Status: StatusReady},
		{ID: "r203", Number: "203", Type: TypeTwin, Status: StatusReady},
		{ID: "r204", Number: "204", Type: TypeTwin, Status: StatusReady},
		// Double rooms
		{ID: "r104", Number: "104", Type: TypeDouble, Status: StatusReady},
		{ID: "r105", Number: "105", Type: TypeDouble, Status: StatusReady},
		{ID: "r106", Number: "106", Type: TypeDouble, Status: StatusReady},
		{ID: "r201", Number: "201", Type: TypeDouble, Status: StatusReady},
		{ID: "r205", Number: "205", Type: TypeDouble, Status: StatusReady},
		{ID: "r206", Number: "206", Type: TypeDouble, Status: StatusReady},
		{ID: "r301", Number: "301", Type: TypeDouble, Status: StatusReady},
	}
}
