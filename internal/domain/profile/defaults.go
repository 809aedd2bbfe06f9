package profile

// Default returns the seed profile used until the owner saves their own.
// The seed carries no avatar; the UI renders a placeholder for it.
func Default() Profile {
	return Profile{
		Name:     "Alex Mercer",
		Title:    "Product Designer + Builder",
		Bio:      "I craft warm, human-centered digital products and document the messy middle. This space is my studio log, gallery, and slow thinking lab.",
		Location: "Austin / Remote",
		Socials: Socials{
			GitHub:   "https://github.com/",
			LinkedIn: "https://linkedin.com/",
			X:        "https://x.com/",
		},
	}
}
