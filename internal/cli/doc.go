package cli

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/sereniflow/sereniflow/internal/store"
	"github.com/sereniflow/sereniflow/internal/validation"
)

type DocAddCmd struct {
	Name  string `arg:"" help:"Document name."`
	URL   string `short:"u" help:"Content locator (file path or URL)." required:""`
	Type  string `short:"t" help:"MIME type, guessed from the name when omitted."`
	Pages int    `short:"p" help:"Total page count, 0 when unknown." default:"0"`
}

func (c *DocAddCmd) Run(ctx *Context) error {
	name, err := validation.RequiredText("document name", c.Name)
	if err != nil {
		return err
	}

	docType := c.Type
	if docType == "" {
		docType = mime.TypeByExtension(filepath.Ext(name))
		if docType == "" {
			docType = "application/octet-stream"
		}
	}

	s, err := ctx.Library()
	if err != nil {
		return err
	}

	doc := s.AddDocument(store.DocumentInput{
		Name:       name,
		Type:       docType,
		URL:        c.URL,
		TotalPages: c.Pages,
	})
	fmt.Printf("Added document: %s (ID: %s)\n", doc.Name, doc.ID)
	return nil
}

type DocListCmd struct{}

func (c *DocListCmd) Run(ctx *Context) error {
	s, err := ctx.Library()
	if err != nil {
		return err
	}

	docs := s.Documents()
	if len(docs) == 0 {
		fmt.Println("The library is empty. Try 'sereniflow doc add'.")
		return nil
	}

	current, hasCurrent := s.CurrentDocument()
	for _, doc := range docs {
		marker := " "
		if hasCurrent && doc.ID == current.ID {
			marker = "*"
		}
		pages := "?"
		if doc.TotalPages > 0 {
			pages = fmt.Sprintf("%d", doc.TotalPages)
		}
		fmt.Printf("%s %-28s page %d/%s  %d bookmarks, %d notes  (%s)\n",
			marker, doc.Name, doc.CurrentPage, pages, len(doc.Bookmarks), len(doc.Notes), shortID(doc.ID))
	}
	return nil
}

type DocOpenCmd struct {
	Document string `arg:"" help:"Document name or id prefix."`
}

func (c *DocOpenCmd) Run(ctx *Context) error {
	s, err := ctx.Library()
	if err != nil {
		return err
	}

	doc, ok := findDocument(s, c.Document)
	if !ok {
		return fmt.Errorf("no document matches %q", c.Document)
	}

	s.OpenDocument(doc.ID)
	fmt.Printf("Opened %s at page %d\n", doc.Name, doc.CurrentPage)
	return nil
}

type DocDeleteCmd struct {
	Document string `arg:"" help:"Document name or id prefix."`
}

func (c *DocDeleteCmd) Run(ctx *Context) error {
	s, err := ctx.Library()
	if err != nil {
		return err
	}

	doc, ok := findDocument(s, c.Document)
	if !ok {
		return fmt.Errorf("no document matches %q", c.Document)
	}

	s.DeleteDocument(doc.ID)
	fmt.Printf("Deleted document: %s\n", doc.Name)
	return nil
}

type DocProgressCmd struct {
	Document string `arg:"" help:"Document name or id prefix."`
	Page     int    `arg:"" help:"Page you are on."`
}

func (c *DocProgressCmd) Run(ctx *Context) error {
	if err := validation.Page(c.Page); err != nil {
		return err
	}

	s, err := ctx.Library()
	if err != nil {
		return err
	}

	doc, ok := findDocument(s, c.Document)
	if !ok {
		return fmt.Errorf("no document matches %q", c.Document)
	}

	s.UpdateDocumentProgress(doc.ID, c.Page)
	fmt.Printf("%s is now at page %d\n", doc.Name, c.Page)
	return nil
}

type DocBookmarkCmd struct {
	Document string `arg:"" help:"Document name or id prefix."`
	Page     int    `arg:"" help:"Page to toggle the bookmark on."`
	Title    string `short:"t" help:"Optional bookmark title."`
}

func (c *DocBookmarkCmd) Run(ctx *Context) error {
	if err := validation.Page(c.Page); err != nil {
		return err
	}

	s, err := ctx.Library()
	if err != nil {
		return err
	}

	doc, ok := findDocument(s, c.Document)
	if !ok {
		return fmt.Errorf("no document matches %q", c.Document)
	}

	s.ToggleBookmark(doc.ID, c.Page, c.Title)
	updated, _ := s.Document(doc.ID)
	for _, bm := range updated.Bookmarks {
		if bm.Page == c.Page {
			fmt.Printf("Bookmarked page %d of %s\n", c.Page, doc.Name)
			return nil
		}
	}
	fmt.Printf("Removed bookmark on page %d of %s\n", c.Page, doc.Name)
	return nil
}

type DocNoteAddCmd struct {
	Document string `arg:"" help:"Document name or id prefix."`
	Title    string `arg:"" help:"Note title."`
	Content  string `arg:"" help:"Note content."`
	Page     int    `short:"p" help:"Page the note belongs to." default:"1"`
}

func (c *DocNoteAddCmd) Run(ctx *Context) error {
	title, err := validation.RequiredText("note title", c.Title)
	if err != nil {
		return err
	}
	if err := validation.Page(c.Page); err != nil {
		return err
	}

	s, err := ctx.Library()
	if err != nil {
		return err
	}

	doc, ok := findDocument(s, c.Document)
	if !ok {
		return fmt.Errorf("no document matches %q", c.Document)
	}

	s.AddNote(doc.ID, store.NoteInput{Title: title, Content: c.Content, Page: c.Page})
	fmt.Printf("Added note to %s (page %d)\n", doc.Name, c.Page)
	return nil
}

type DocNoteListCmd struct {
	Document string `arg:"" help:"Document name or id prefix."`
}

func (c *DocNoteListCmd) Run(ctx *Context) error {
	s, err := ctx.Library()
	if err != nil {
		return err
	}

	doc, ok := findDocument(s, c.Document)
	if !ok {
		return fmt.Errorf("no document matches %q", c.Document)
	}

	if len(doc.Notes) == 0 {
		fmt.Printf("No notes on %s yet.\n", doc.Name)
		return nil
	}
	for _, note := range doc.Notes {
		fmt.Printf("p.%d %s: %s (%s)\n", note.Page, note.Title, note.Content, shortID(note.ID))
	}
	return nil
}

type DocNoteDeleteCmd struct {
	Document string `arg:"" help:"Document name or id prefix."`
	NoteID   string `arg:"" help:"Note id prefix."`
}

func (c *DocNoteDeleteCmd) Run(ctx *Context) error {
	s, err := ctx.Library()
	if err != nil {
		return err
	}

	doc, ok := findDocument(s, c.Document)
	if !ok {
		return fmt.Errorf("no document matches %q", c.Document)
	}

	for _, note := range doc.Notes {
		if note.ID == c.NoteID || (len(c.NoteID) >= 4 && strings.HasPrefix(note.ID, c.NoteID)) {
			s.DeleteNote(doc.ID, note.ID)
			fmt.Printf("Deleted note: %s\n", note.Title)
			return nil
		}
	}
	return fmt.Errorf("no note matches %q", c.NoteID)
}
