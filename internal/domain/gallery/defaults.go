package gallery

// Defaults returns the seed gallery shown until the owner stores their
// own collection. Seed images are placeholder labels, not uploads.
func Defaults() []Item {
	return []Item{
		{
			ID:     "gal-1",
			Title:  "Night Garden UI",
			Detail: "Experimental interface for a botanical data story.",
			Image:  "Concept A",
		},
		{
			ID:     "gal-2",
			Title:  "Urban Sound Map",
			Detail: "A layered atlas blending audio, texture, and typography.",
			Image:  "Concept B",
		},
		{
			ID:     "gal-3",
			Title:  "Studio Inventory",
			Detail: "Internal tooling for a creative collective.",
			Image:  "Concept C",
		},
		{
			ID:     "gal-4",
			Title:  "Ritual Tracker",
			Detail: "Minimal habit planner with tactile feedback.",
			Image:  "Concept D",
		},
	}
}
