package models

// DocumentBookmark marks a page in a document. A document carries at most one
// bookmark per page.
type DocumentBookmark struct {
	ID        string `json:"id"`
	Page      int    `json:"page"`
	Title     string `json:"title,omitempty"`
	DateAdded string `json:"dateAdded"` // RFC3339 timestamp
}

// DocumentNote is a free-form note attached to a page. Multiple notes per
// page are allowed.
type DocumentNote struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Page      int    `json:"page"`
	DateAdded string `json:"dateAdded"` // RFC3339 timestamp
}

// Document is an item in the reading library.
type Document struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Type        string             `json:"type"` // MIME-like string
	URL         string             `json:"url"`
	Content     string             `json:"content,omitempty"`
	DateAdded   string             `json:"dateAdded"` // RFC3339 timestamp
	CurrentPage int                `json:"currentPage"`
	TotalPages  int                `json:"totalPages"` // 0 = unknown
	Bookmarks   []DocumentBookmark `json:"bookmarks"`
	Notes       []DocumentNote     `json:"notes"`
}

// Clone returns a deep copy of the document so callers can treat reads as
// immutable snapshots.
func (d Document) Clone() Document {
	out := d
	if d.Bookmarks != nil {
		out.Bookmarks = make([]DocumentBookmark, len(d.Bookmarks))
		copy(out.Bookmarks, d.Bookmarks)
	}
	if d.Notes != nil {
		out.Notes = make([]DocumentNote, len(d.Notes))
		copy(out.Notes, d.Notes)
	}
	return out
}
