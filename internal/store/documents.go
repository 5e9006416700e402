package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sereniflow/sereniflow/internal/constants"
	"github.com/sereniflow/sereniflow/internal/logger"
	"github.com/sereniflow/sereniflow/internal/models"
	"github.com/sereniflow/sereniflow/internal/storage"
)

// documentSnapshot is the full serialized state written to the
// document-store slot. CurrentDocument is persisted as a materialized copy
// for compatibility with the snapshot shape, but in memory the open document
// is tracked by id and resolved against the collection on each read.
type documentSnapshot struct {
	Documents       []models.Document `json:"documents"`
	CurrentDocument *models.Document  `json:"currentDocument"`
}

// DocumentInput carries the caller-supplied fields for a new library item.
type DocumentInput struct {
	Name       string
	Type       string
	URL        string
	Content    string
	TotalPages int
}

// NoteInput carries the caller-supplied fields for a new document note.
type NoteInput struct {
	Title   string
	Content string
	Page    int
}

// DocumentLibraryStore owns the reading library and the pointer to the
// currently open document. Every mutation updates the documents collection
// and, when the target is the open document, the materialized current
// document in the same commit, so readers never observe the two disagreeing.
// Same contract as WellnessStore otherwise: synchronous, total over valid
// input, silent no-ops on unknown ids, persistence errors logged only.
//
// Not safe for concurrent use without external synchronization.
type DocumentLibraryStore struct {
	provider    storage.Provider
	documents   []models.Document
	currentID   string
	subscribers map[int]func()
	nextSubID   int
}

// NewDocumentLibraryStore rehydrates the store from the provider's
// document-store slot. Absent or unparseable snapshots start empty.
func NewDocumentLibraryStore(p storage.Provider) *DocumentLibraryStore {
	s := &DocumentLibraryStore{
		provider:    p,
		subscribers: make(map[int]func()),
	}
	s.rehydrate()
	return s
}

func (s *DocumentLibraryStore) rehydrate() {
	s.documents = []models.Document{}
	s.currentID = ""

	data, err := s.provider.Get(constants.DocumentStorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			logger.Warn("could not read document snapshot, starting empty", "error", err)
		}
		return
	}

	var snap documentSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Warn("malformed document snapshot, starting empty")
		return
	}

	if snap.Documents != nil {
		s.documents = snap.Documents
	}
	// The open-document pointer is weak: it only survives rehydration if the
	// referenced document still exists in the collection.
	if snap.CurrentDocument != nil {
		for _, doc := range s.documents {
			if doc.ID == snap.CurrentDocument.ID {
				s.currentID = doc.ID
				break
			}
		}
	}
}

// Subscribe registers a callback invoked after every committed mutation and
// returns an unsubscribe function.
func (s *DocumentLibraryStore) Subscribe(fn func()) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() { delete(s.subscribers, id) }
}

func (s *DocumentLibraryStore) commit() {
	s.persist()
	for _, fn := range s.subscribers {
		fn()
	}
}

func (s *DocumentLibraryStore) persist() {
	snap := documentSnapshot{Documents: s.documents}
	if doc, ok := s.current(); ok {
		snap.CurrentDocument = &doc
	}

	data, err := json.Marshal(snap)
	if err != nil {
		logger.Error("failed to serialize document snapshot", "error", err)
		return
	}
	if err := s.provider.Put(constants.DocumentStorageKey, data); err != nil {
		logger.Error("failed to persist document snapshot", "error", err)
	}
}

// current materializes the open document against the authoritative
// collection.
func (s *DocumentLibraryStore) current() (models.Document, bool) {
	if s.currentID == "" {
		return models.Document{}, false
	}
	for _, doc := range s.documents {
		if doc.ID == s.currentID {
			return doc, true
		}
	}
	return models.Document{}, false
}

// AddDocument appends a new document to the library and opens it
// immediately. The store assigns the id and dateAdded; reading starts at
// page 1.
func (s *DocumentLibraryStore) AddDocument(input DocumentInput) models.Document {
	doc := models.Document{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Type:        input.Type,
		URL:         input.URL,
		Content:     input.Content,
		DateAdded:   time.Now().Format(time.RFC3339),
		CurrentPage: 1,
		TotalPages:  input.TotalPages,
		Bookmarks:   []models.DocumentBookmark{},
		Notes:       []models.DocumentNote{},
	}

	s.documents = append(s.documents, doc)
	s.currentID = doc.ID
	s.commit()
	return doc.Clone()
}

// OpenDocument points the open-document reference at the matching document,
// or clears it when the id is unknown.
func (s *DocumentLibraryStore) OpenDocument(id string) {
	s.currentID = ""
	for _, doc := range s.documents {
		if doc.ID == id {
			s.currentID = id
			break
		}
	}
	s.commit()
}

// DeleteDocument removes the document; if it was open the open-document
// reference is cleared.
func (s *DocumentLibraryStore) DeleteDocument(id string) {
	for i := range s.documents {
		if s.documents[i].ID == id {
			s.documents = append(s.documents[:i], s.documents[i+1:]...)
			if s.currentID == id {
				s.currentID = ""
			}
			s.commit()
			return
		}
	}
}

// UpdateDocumentProgress records the reader's position. A page of zero or
// less is the reading view's heartbeat and leaves the position unchanged.
func (s *DocumentLibraryStore) UpdateDocumentProgress(id string, page int) {
	for i := range s.documents {
		if s.documents[i].ID == id {
			if page > 0 {
				s.documents[i].CurrentPage = page
			}
			s.commit()
			return
		}
	}
}

// ToggleBookmark removes the bookmark on the page if one exists, otherwise
// adds one. An empty title defaults to "Page {page}".
func (s *DocumentLibraryStore) ToggleBookmark(id string, page int, title string) {
	for i := range s.documents {
		if s.documents[i].ID != id {
			continue
		}

		doc := &s.documents[i]
		for j, bm := range doc.Bookmarks {
			if bm.Page == page {
				doc.Bookmarks = append(doc.Bookmarks[:j], doc.Bookmarks[j+1:]...)
				s.commit()
				return
			}
		}

		if title == "" {
			title = fmt.Sprintf("Page %d", page)
		}
		doc.Bookmarks = append(doc.Bookmarks, models.DocumentBookmark{
			ID:        uuid.New().String(),
			Page:      page,
			Title:     title,
			DateAdded: time.Now().Format(time.RFC3339),
		})
		s.commit()
		return
	}
}

// AddNote appends a note to the document. The store assigns the note id and
// dateAdded. Multiple notes per page are allowed.
func (s *DocumentLibraryStore) AddNote(id string, input NoteInput) {
	for i := range s.documents {
		if s.documents[i].ID == id {
			s.documents[i].Notes = append(s.documents[i].Notes, models.DocumentNote{
				ID:        uuid.New().String(),
				Title:     input.Title,
				Content:   input.Content,
				Page:      input.Page,
				DateAdded: time.Now().Format(time.RFC3339),
			})
			s.commit()
			return
		}
	}
}

// DeleteNote removes a note by id. Unknown document or note ids are a
// silent no-op.
func (s *DocumentLibraryStore) DeleteNote(id, noteID string) {
	for i := range s.documents {
		if s.documents[i].ID != id {
			continue
		}

		notes := s.documents[i].Notes
		for j := range notes {
			if notes[j].ID == noteID {
				s.documents[i].Notes = append(notes[:j], notes[j+1:]...)
				s.commit()
				return
			}
		}
		return
	}
}

// Documents returns a deep copy of the library in insertion order.
func (s *DocumentLibraryStore) Documents() []models.Document {
	out := make([]models.Document, len(s.documents))
	for i, doc := range s.documents {
		out[i] = doc.Clone()
	}
	return out
}

// Document returns a copy of the document with the given id.
func (s *DocumentLibraryStore) Document(id string) (models.Document, bool) {
	for _, doc := range s.documents {
		if doc.ID == id {
			return doc.Clone(), true
		}
	}
	return models.Document{}, false
}

// CurrentDocument returns a copy of the currently open document, if any.
func (s *DocumentLibraryStore) CurrentDocument() (models.Document, bool) {
	doc, ok := s.current()
	if !ok {
		return models.Document{}, false
	}
	return doc.Clone(), true
}
