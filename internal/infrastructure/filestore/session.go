// Package filestore owns the on-disk lifecycle of AHBS documents: the
// single open session, new/open/save/close flows, dirty tracking and
// backup rotation. All business mutation happens elsewhere; this package
// only moves bytes.
package filestore

import (
	"fmt"
	"os"
	"strings"

	"ahbsales/internal/container"
	"ahbsales/internal/core/apperror"
	"ahbsales/internal/core/clock"
	"ahbsales/internal/core/dates"
	"ahbsales/internal/domain/ledger"
	"ahbsales/pkg/logger"
)

// Extension is the document file extension.
const Extension = ".ahbs"

// Session is the single active document per process. It is constructed at
// startup and replaced wholesale on new/open/close; no outside code
// partially mutates it.
type Session struct {
	codec *container.Codec
	clock clock.Clock
	log   *logger.Logger

	path  string
	doc   *container.Document
	dirty bool
}

// NewSession starts with an in-memory empty document and no file path.
func NewSession(codec *container.Codec, clk clock.Clock, log *logger.Logger) *Session {
	return &Session{
		codec: codec,
		clock: clk,
		log:   log.WithComponent("filestore"),
		doc:   container.NewDocument(clk),
	}
}

// Path returns the current file path, empty when nothing is on disk yet.
func (s *Session) Path() string { return s.path }

// Dirty reports unsaved changes.
func (s *Session) Dirty() bool { return s.dirty }

// MarkDirty flags unsaved changes after a business mutation.
func (s *Session) MarkDirty() { s.dirty = true }

// Document returns the open document.
func (s *Session) Document() *container.Document { return s.doc }

// Ledger hands the embedded business state to the ledger store.
func (s *Session) Ledger() *ledger.Ledger { return &s.doc.Data }

// EnsureExtension appends the .ahbs extension when missing.
func EnsureExtension(path string) string {
	if strings.HasSuffix(path, Extension) {
		return path
	}
	return path + Extension
}

// NewFile creates an empty document at path and makes it current.
func (s *Session) NewFile(path string) error {
	path = EnsureExtension(path)
	s.doc = container.NewDocument(s.clock)
	s.path = path
	if err := s.write(path); err != nil {
		return err
	}
	s.dirty = false
	s.log.Infow("created document", "path", path)
	return nil
}

// Open reads and decrypts the file at path and makes it current. The
// previous session state is untouched on failure.
func (s *Session) Open(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := s.codec.Decode(raw)
	if err != nil {
		return err
	}
	s.doc = doc
	s.path = path
	s.dirty = false
	s.log.Infow("opened document", "path", path,
		"products", len(doc.Data.Products),
		"customers", len(doc.Data.Customers),
		"invoices", len(doc.Data.Invoices))
	return nil
}

// Save writes the current document back to its file.
func (s *Session) Save() error {
	if s.path == "" {
		return apperror.NewValidation("no file is open; use save-as with a path")
	}
	if err := s.write(s.path); err != nil {
		return err
	}
	s.dirty = false
	s.log.Infow("saved document", "path", s.path)
	return nil
}

// SaveAs writes the current document to a new path and makes it current.
func (s *Session) SaveAs(path string) error {
	path = EnsureExtension(path)
	if err := s.write(path); err != nil {
		return err
	}
	s.path = path
	s.dirty = false
	s.log.Infow("saved document", "path", path)
	return nil
}

// Close discards the current document and resets to an empty one.
// Unsaved-changes prompting is the caller's concern.
func (s *Session) Close() {
	s.path = ""
	s.doc = container.NewDocument(s.clock)
	s.dirty = false
}

// write refreshes the updated timestamp, encrypts, rotates a backup of the
// previous file contents, and replaces the file atomically.
func (s *Session) write(path string) error {
	s.doc.Meta.UpdatedAt = dates.FormatISO(s.clock.Now())
	blob, err := s.codec.Encode(s.doc)
	if err != nil {
		return err
	}

	if err := rotateBackup(path); err != nil {
		// A failed backup never blocks the save itself.
		s.log.Warnw("backup rotation failed", "path", path, "error", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
