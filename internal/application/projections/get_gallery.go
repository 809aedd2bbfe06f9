package projections

import "context"

// GetGalleryDeps holds dependencies for the gallery projection.
type GetGalleryDeps struct {
	GalleryStore GalleryStore
}

// GalleryResult carries the output of the gallery projection.
type GalleryResult struct {
	Items []GalleryCard `json:"items"`
}

// QueryGetGallery projects every gallery item in stored order.
func QueryGetGallery(ctx context.Context, deps GetGalleryDeps) (GalleryResult, error) {
	items, err := deps.GalleryStore.List(ctx)
	if err != nil {
		return GalleryResult{}, err
	}

	result := GalleryResult{Items: make([]GalleryCard, 0, len(items))}
	for _, it := range items {
		result.Items = append(result.Items, newGalleryCard(it))
	}
	return result, nil
}
