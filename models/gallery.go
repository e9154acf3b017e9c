package models

import "encoding/json"

// GalleryEntry is one image in a project gallery. Rows written by early
// versions of the admin panel store bare URL strings while newer rows store
// {url, alt} objects; UnmarshalJSON accepts both shapes so every reader sees
// the object form, with Alt defaulting to the empty string.
type GalleryEntry struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

func (g *GalleryEntry) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		g.Alt = ""
		return json.Unmarshal(data, &g.URL)
	}

	// alias avoids recursing back into this method
	type entry GalleryEntry
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}
	*g = GalleryEntry(e)
	return nil
}
