package models

// PresetEvent is a built-in holiday seeded into the event store. Preset rows
// are identified by their (date, title) pair and are not editable through the
// API.
type PresetEvent struct {
	Title string
	Type  string
	Color string
}

// PresetEvents maps ISO dates to the Saudi holidays for 2025 and 2026.
var PresetEvents = map[string]PresetEvent{
	"2025-02-22": {Title: "Founding Day", Type: "public", Color: "#7030A0"},
	"2025-09-23": {Title: "Saudi National Day", Type: "public", Color: "#7030A0"},
	"2025-03-30": {Title: "Eid al-Fitr", Type: "islamic", Color: "#00B050"},
	"2025-03-31": {Title: "Eid al-Fitr", Type: "islamic", Color: "#00B050"},
	"2025-06-06": {Title: "Eid al-Adha", Type: "islamic", Color: "#00B050"},
	"2025-06-07": {Title: "Eid al-Adha", Type: "islamic", Color: "#00B050"},
	"2025-06-08": {Title: "Eid al-Adha", Type: "islamic", Color: "#00B050"},
	"2026-02-22": {Title: "Founding Day", Type: "public", Color: "#7030A0"},
	"2026-09-23": {Title: "Saudi National Day", Type: "public", Color: "#7030A0"},
	"2026-03-20": {Title: "Eid al-Fitr", Type: "islamic", Color: "#00B050"},
	"2026-03-21": {Title: "Eid al-Fitr", Type: "islamic", Color: "#00B050"},
	"2026-05-27": {Title: "Eid al-Adha", Type: "islamic", Color: "#00B050"},
	"2026-05-28": {Title: "Eid al-Adha", Type: "islamic", Color: "#00B050"},
	"2026-05-29": {Title: "Eid al-Adha", Type: "islamic", Color: "#00B050"},
}

// EventColors is the default display color per category. It is a client
// hint; an event's own color field is authoritative.
var EventColors = map[string]string{
	"school":         "#5B9BD5",
	"public":         "#7030A0",
	"islamic":        "#00B050",
	"christian":      "#FF0000",
	"back_to_school": "#FFFF00",
	"custom":         "#5B9BD5",
}
