package domain

import (
	"sort"
	"time"
)

// Library is the identifier -> document registry built from asset sources
type Library struct {
	LoadedAt  time.Time
	documents map[string]*Document
}

// NewLibrary creates an empty library
func NewLibrary() *Library {
	return &Library{
		LoadedAt:  time.Now(),
		documents: make(map[string]*Document),
	}
}

// Add registers a document. A later document with the same identifier
// replaces the earlier one. Empty and reserved identifiers are ignored.
func (l *Library) Add(doc *Document) bool {
	if doc == nil || doc.Identifier == "" || IsReserved(doc.Identifier) {
		return false
	}
	if l.documents == nil {
		l.documents = make(map[string]*Document)
	}
	l.documents[doc.Identifier] = doc
	return true
}

// Merge adds every document of other, overwriting on collision
func (l *Library) Merge(other *Library) {
	for _, doc := range other.Documents() {
		l.Add(doc)
	}
}

// Get returns a copy of the document registered under identifier
func (l *Library) Get(identifier string) (Document, bool) {
	if IsReserved(identifier) {
		return Document{}, false
	}
	doc, ok := l.documents[identifier]
	if !ok {
		return Document{}, false
	}
	return *doc, true
}

// Has checks if an identifier is registered
func (l *Library) Has(identifier string) bool {
	_, ok := l.Get(identifier)
	return ok
}

// Identifiers returns every identifier in ascending order
func (l *Library) Identifiers() []string {
	ids := make([]string, 0, len(l.documents))
	for id := range l.documents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Documents returns every document ordered by identifier
func (l *Library) Documents() []*Document {
	ids := l.Identifiers()
	docs := make([]*Document, len(ids))
	for i, id := range ids {
		docs[i] = l.documents[id]
	}
	return docs
}

// Count returns the number of registered documents
func (l *Library) Count() int {
	return len(l.documents)
}

// CountInvalid returns the number of documents that failed to parse
func (l *Library) CountInvalid() int {
	count := 0
	for _, doc := range l.documents {
		if !doc.Valid() {
			count++
		}
	}
	return count
}
