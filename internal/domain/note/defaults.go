package note

// Defaults returns the seed notes shown until the owner stores their own
// collection, ordered newest first.
func Defaults() []Note {
	return []Note{
		{
			ID:       "note-1",
			Title:    "Designing With Slow Data",
			Date:     "2025-01-12",
			Category: "Product",
			Content:  "## The premise\n\nSlow data means choosing fewer signals with more intention.\n\n### Signals I trust\n- Ambient user stories\n- Repeated friction points\n- Emotional language in interviews\n\n```\nMeasure what you can hear, not only what you can count.\n```",
		},
		{
			ID:       "note-2",
			Title:    "Three Ways to Ship Less",
			Date:     "2025-01-06",
			Category: "Strategy",
			Content:  "## Shipping less\n\nClarity is a feature. I focus on:\n\n1. Cutting the unclear steps.\n2. Removing the silent dependencies.\n3. Freeing the team from perf theater.",
		},
		{
			ID:       "note-3",
			Title:    "Sketchbook: Color as Memory",
			Date:     "2024-12-20",
			Category: "Notes",
			Content:  "A note on using color palettes that feel familiar, almost edible.\n\n### Palette study\n- Toasted almond\n- Smoked apricot\n- Sea glass",
		},
	}
}
