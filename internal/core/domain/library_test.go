package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kamal-hamza/sx-cli/pkg/svg"
)

func TestLibrary_OrderedIdentifiers(t *testing.T) {
	lib := NewLibrary()
	for _, id := range []string{"zebra", "arrow", "social__icon", "menu"} {
		lib.Add(NewDocument(id, `<svg viewBox="0 0 1 1"/>`, ""))
	}

	want := []string{"arrow", "menu", "social__icon", "zebra"}
	if diff := cmp.Diff(want, lib.Identifiers()); diff != "" {
		t.Errorf("Identifiers() mismatch (-want +got):\n%s", diff)
	}

	docs := lib.Documents()
	for i, doc := range docs {
		if doc.Identifier != want[i] {
			t.Errorf("Documents()[%d] = %q, want %q", i, doc.Identifier, want[i])
		}
	}
}

func TestLibrary_LastWriteWins(t *testing.T) {
	lib := NewLibrary()
	lib.Add(NewDocument("arrow", `<svg width="1" height="1"/>`, "/a/arrow.svg"))
	lib.Add(NewDocument("arrow", `<svg width="2" height="2"/>`, "/b/arrow.svg"))

	doc, ok := lib.Get("arrow")
	if !ok {
		t.Fatal("arrow not registered")
	}
	if doc.SourcePath != "/b/arrow.svg" {
		t.Errorf("SourcePath = %q, want the later document", doc.SourcePath)
	}
	if lib.Count() != 1 {
		t.Errorf("Count() = %d, want 1", lib.Count())
	}
}

func TestLibrary_ReservedKeys(t *testing.T) {
	lib := NewLibrary()

	if lib.Add(NewDocument("_from_cache", "<svg/>", "")) {
		t.Error("Add() accepted a reserved identifier")
	}
	if lib.Add(NewDocument("", "<svg/>", "")) {
		t.Error("Add() accepted an empty identifier")
	}
	if lib.Has("_from_cache") {
		t.Error("reserved key should never match")
	}
}

func TestLibrary_Merge(t *testing.T) {
	first := NewLibrary()
	first.Add(NewDocument("arrow", "<svg/>", "first"))
	second := NewLibrary()
	second.Add(NewDocument("arrow", "<svg/>", "second"))
	second.Add(NewDocument("second", "<svg/>", "second"))

	first.Merge(second)

	if first.Count() != 2 {
		t.Errorf("Count() = %d, want 2", first.Count())
	}
	if doc, _ := first.Get("arrow"); doc.SourcePath != "second" {
		t.Errorf("merged arrow SourcePath = %q, want second", doc.SourcePath)
	}
}

func TestLibrary_GetReturnsCopy(t *testing.T) {
	lib := NewLibrary()
	lib.Add(NewDocument("arrow", `<svg viewBox="0 0 4 4"/>`, ""))

	doc, _ := lib.Get("arrow")
	doc.Inner = "changed"

	again, _ := lib.Get("arrow")
	if again.Inner == "changed" {
		t.Error("Get() exposed the stored document")
	}
}

func TestNewDocument_ParseError(t *testing.T) {
	doc := NewDocument("broken", "not xml", "/tmp/broken.svg")

	if doc.Valid() {
		t.Fatal("document should be invalid")
	}
	if len(doc.Errors) == 0 {
		t.Error("Errors should not be empty")
	}
	if doc.Width != nil || doc.Height != nil || doc.Inner != "" {
		t.Error("invalid document should carry no geometry or content")
	}

	var pe *svg.ParseError
	if !errors.As(doc.ParseErr(), &pe) {
		t.Errorf("ParseErr() = %v, want *svg.ParseError", doc.ParseErr())
	}
}

func TestNewDocument_TrimsRaw(t *testing.T) {
	doc := NewDocument("arrow", "\n  <svg viewBox=\"0 0 2 1\"/>\n", "")

	if doc.Raw != `<svg viewBox="0 0 2 1"/>` {
		t.Errorf("Raw = %q", doc.Raw)
	}
	if doc.Aspect != 2 {
		t.Errorf("Aspect = %v, want 2", doc.Aspect)
	}
}
