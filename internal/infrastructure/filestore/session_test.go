package filestore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ahbsales/internal/container"
	"ahbsales/internal/core/apperror"
	"ahbsales/internal/core/clock"
	"ahbsales/internal/core/types"
	"ahbsales/internal/domain/ledger"
	"ahbsales/pkg/logger"
)

func testCodec() *container.Codec {
	var key container.Key
	key[0] = 0x42
	return container.NewCodec(key)
}

func newTestSession() *Session {
	clk := &clock.Fixed{T: time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)}
	return NewSession(testCodec(), clk, logger.Nop())
}

func TestEnsureExtension(t *testing.T) {
	assert.Equal(t, "books.ahbs", EnsureExtension("books"))
	assert.Equal(t, "books.ahbs", EnsureExtension("books.ahbs"))
}

func TestNewFileOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shop.ahbs")

	sess := newTestSession()
	require.NoError(t, sess.NewFile(path))
	assert.Equal(t, path, sess.Path())
	assert.False(t, sess.Dirty())

	st := ledger.NewStore(sess.Ledger())
	_, err := st.AddProduct(ledger.ProductInput{ID: 1, NameBn: "চাল", Price: types.N(55)})
	require.NoError(t, err)
	sess.MarkDirty()
	assert.True(t, sess.Dirty())
	require.NoError(t, sess.Save())
	assert.False(t, sess.Dirty())

	other := newTestSession()
	require.NoError(t, other.Open(path))
	require.Len(t, other.Ledger().Products, 1)
	assert.Equal(t, "চাল", other.Ledger().Products[0].NameBn)
}

func TestNewFileAppendsExtension(t *testing.T) {
	dir := t.TempDir()
	sess := newTestSession()

	require.NoError(t, sess.NewFile(filepath.Join(dir, "shop")))
	assert.Equal(t, filepath.Join(dir, "shop.ahbs"), sess.Path())
	_, err := os.Stat(filepath.Join(dir, "shop.ahbs"))
	assert.NoError(t, err)
}

func TestSaveWithoutPath(t *testing.T) {
	sess := newTestSession()
	err := sess.Save()
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestSaveAs(t *testing.T) {
	dir := t.TempDir()
	sess := newTestSession()
	sess.MarkDirty()

	path := filepath.Join(dir, "copy")
	require.NoError(t, sess.SaveAs(path))
	assert.Equal(t, filepath.Join(dir, "copy.ahbs"), sess.Path())
	assert.False(t, sess.Dirty())
}

func TestOpenWrongKeyLeavesSessionIntact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shop.ahbs")

	writer := newTestSession()
	require.NoError(t, writer.NewFile(path))

	var otherKey container.Key
	otherKey[0] = 0x99
	clk := &clock.Fixed{T: time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)}
	sess := NewSession(container.NewCodec(otherKey), clk, logger.Nop())
	before := sess.Document()

	err := sess.Open(path)
	require.Error(t, err)
	assert.True(t, apperror.IsCrypto(err))
	assert.Same(t, before, sess.Document())
	assert.Equal(t, "", sess.Path())
}

func TestOpenMissingFile(t *testing.T) {
	sess := newTestSession()
	err := sess.Open(filepath.Join(t.TempDir(), "nope.ahbs"))
	assert.Error(t, err)
}

func TestSaveRotatesBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shop.ahbs")

	sess := newTestSession()
	require.NoError(t, sess.NewFile(path))

	firstBlob, err := os.ReadFile(path)
	require.NoError(t, err)

	// First save of an existing file rotates the previous contents.
	st := ledger.NewStore(sess.Ledger())
	_, err = st.AddCustomer(ledger.CustomerInput{ID: 1, NameBn: "রহিম"})
	require.NoError(t, err)
	sess.MarkDirty()
	require.NoError(t, sess.Save())

	backup, err := ReadBackup(path)
	require.NoError(t, err)
	assert.Equal(t, firstBlob, backup)

	// The backup still decrypts to the pre-save document.
	doc, err := testCodec().Decode(backup)
	require.NoError(t, err)
	assert.Empty(t, doc.Data.Customers)
}

func TestClose(t *testing.T) {
	dir := t.TempDir()
	sess := newTestSession()
	require.NoError(t, sess.NewFile(filepath.Join(dir, "shop")))

	st := ledger.NewStore(sess.Ledger())
	_, err := st.AddProduct(ledger.ProductInput{ID: 1, NameBn: "x"})
	require.NoError(t, err)
	sess.MarkDirty()

	sess.Close()
	assert.Equal(t, "", sess.Path())
	assert.False(t, sess.Dirty())
	assert.Empty(t, sess.Ledger().Products)
}

func TestSettingsTouchRecent(t *testing.T) {
	s := Settings{RecentFiles: []string{"a.ahbs", "b.ahbs"}}

	s.TouchRecent("b.ahbs")
	assert.Equal(t, []string{"b.ahbs", "a.ahbs"}, s.RecentFiles)

	s.TouchRecent("c.ahbs")
	assert.Equal(t, []string{"c.ahbs", "b.ahbs", "a.ahbs"}, s.RecentFiles)

	for i := 0; i < maxRecentFiles+5; i++ {
		s.TouchRecent(filepath.Join("dir", "f", string(rune('a'+i))+".ahbs"))
	}
	assert.Len(t, s.RecentFiles, maxRecentFiles)
}

func TestSettingsLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	missing := LoadSettings(path)
	assert.Equal(t, Settings{}, missing)

	want := Settings{Language: "bn", BranchName: "প্রধান শাখা", RecentFiles: []string{"x.ahbs"}}
	require.NoError(t, SaveSettings(path, want))
	assert.Equal(t, want, LoadSettings(path))
}
