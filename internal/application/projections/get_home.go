package projections

import "context"

// homePreviewCount is how many gallery items and notes the home page shows.
const homePreviewCount = 3

// GetHomeDeps holds dependencies for the home projection.
type GetHomeDeps struct {
	ProfileStore ProfileStore
	GalleryStore GalleryStore
	NoteStore    NoteStore
}

// HomeResult carries the output of the home projection.
type HomeResult struct {
	Profile ProfileView    `json:"profile"`
	Gallery []GalleryCard  `json:"gallery"`
	Notes   []NoteListItem `json:"notes"`
}

// QueryGetHome projects the profile summary plus the first three gallery
// items and first three notes. Pure read; never mutates storage.
func QueryGetHome(ctx context.Context, deps GetHomeDeps) (HomeResult, error) {
	p, err := deps.ProfileStore.Get(ctx)
	if err != nil {
		return HomeResult{}, err
	}
	items, err := deps.GalleryStore.List(ctx)
	if err != nil {
		return HomeResult{}, err
	}
	notes, err := deps.NoteStore.List(ctx)
	if err != nil {
		return HomeResult{}, err
	}

	result := HomeResult{
		Profile: newProfileView(p),
		Gallery: []GalleryCard{},
		Notes:   []NoteListItem{},
	}
	for _, it := range items {
		if len(result.Gallery) == homePreviewCount {
			break
		}
		result.Gallery = append(result.Gallery, newGalleryCard(it))
	}
	for _, n := range notes {
		if len(result.Notes) == homePreviewCount {
			break
		}
		result.Notes = append(result.Notes, newNoteListItem(n))
	}
	return result, nil
}
