package projections

import (
	domainGallery "studiolog/internal/domain/gallery"
	domainNote "studiolog/internal/domain/note"
	domainProfile "studiolog/internal/domain/profile"
)

// displayDateLayout is the short locale form dates are shown in.
const displayDateLayout = "Jan 2, 2006"

// SocialLink is one labeled external link on the profile.
type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ProfileView is the display shape of the profile.
type ProfileView struct {
	Name     string       `json:"name"`
	Title    string       `json:"title"`
	Bio      string       `json:"bio"`
	Location string       `json:"location"`
	Avatar   string       `json:"avatar,omitempty"`
	Socials  []SocialLink `json:"socials"`
}

// GalleryCard is the display shape of one gallery item. Embedded tells
// the client whether Image is an uploaded data URI or a placeholder
// label to render as a stylized card.
type GalleryCard struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Image    string `json:"image"`
	Embedded bool   `json:"embedded"`
	Link     string `json:"link,omitempty"`
}

// NoteListItem is the display shape of one note in a list.
type NoteListItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

// newProfileView projects a profile into its display shape. Socials keep
// the fixed GitHub / LinkedIn / X ordering.
func newProfileView(p domainProfile.Profile) ProfileView {
	return ProfileView{
		Name:     p.Name,
		Title:    p.Title,
		Bio:      p.Bio,
		Location: p.Location,
		Avatar:   p.Avatar,
		Socials: []SocialLink{
			{Label: "GitHub", URL: p.Socials.GitHub},
			{Label: "LinkedIn", URL: p.Socials.LinkedIn},
			{Label: "X", URL: p.Socials.X},
		},
	}
}

// newGalleryCard projects a gallery item into its display shape.
func newGalleryCard(it domainGallery.Item) GalleryCard {
	return GalleryCard{
		ID:       it.ID,
		Title:    it.Title,
		Detail:   it.Detail,
		Image:    it.Image,
		Embedded: it.HasEmbeddedImage(),
		Link:     it.Link,
	}
}

// newNoteListItem projects a note into its list display shape.
func newNoteListItem(n domainNote.Note) NoteListItem {
	return NoteListItem{ID: n.ID, Title: n.Title, Date: formatDate(n), Category: n.Category}
}

// formatDate renders the note's date in short display form. Free-form
// date text passes through unchanged.
func formatDate(n domainNote.Note) string {
	t, ok := n.ParsedDate()
	if !ok {
		return n.Date
	}
	return t.Format(displayDateLayout)
}
