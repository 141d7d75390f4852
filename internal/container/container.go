// Package container implements the AHBS encrypted document file format.
//
// File layout, all fixed width and in this order:
//
//	offset  size  field
//	0       4     magic "AHBS" (ASCII)
//	4       1     container version (0x01)
//	5       12    AES-GCM nonce
//	17      16    authentication tag
//	33      N     ciphertext (AES-256-GCM of the UTF-8 JSON document)
//
// There is no length prefix; everything after the tag is ciphertext.
package container

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"

	"ahbsales/internal/core/apperror"
	"ahbsales/internal/core/clock"
	"ahbsales/internal/core/dates"
	"ahbsales/internal/domain/ledger"
)

const (
	// Version is the only container version currently written or accepted.
	Version = 0x01

	nonceSize  = 12
	tagSize    = 16
	headerSize = 4 + 1 + nonceSize + tagSize
)

var magic = []byte("AHBS")

// SchemaVersion is the current logical document schema. It governs how the
// embedded ledger is interpreted; unknown versions are rejected at decode.
const SchemaVersion = 1

// Key is the 256-bit document encryption key. It is provisioned externally
// and never persisted inside the document.
type Key [32]byte

// Meta carries document-level bookkeeping.
type Meta struct {
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
	BranchName string `json:"branchName,omitempty"`
}

// Document is the top-level persisted unit.
type Document struct {
	SchemaVersion int           `json:"schemaVersion"`
	Meta          Meta          `json:"meta"`
	Data          ledger.Ledger `json:"data"`
}

// NewDocument returns an empty schema-version-1 document with both
// timestamps set to now and an initialized empty ledger.
func NewDocument(clk clock.Clock) *Document {
	now := dates.FormatISO(clk.Now())
	return &Document{
		SchemaVersion: SchemaVersion,
		Meta:          Meta{CreatedAt: now, UpdatedAt: now},
		Data:          ledger.New(),
	}
}

// Codec encrypts and decrypts documents with AES-256-GCM.
type Codec struct {
	key Key
}

// NewCodec returns a codec bound to the given key.
func NewCodec(key Key) *Codec {
	return &Codec{key: key}
}

// Encode serializes doc to JSON and encrypts it into the AHBS container
// layout. A fresh random nonce is generated on every call.
func (c *Codec) Encode(doc *Document) ([]byte, error) {
	plain, err := json.Marshal(doc)
	if err != nil {
		return nil, apperror.NewFormat("cannot serialize document").WithCause(err)
	}

	gcm, err := c.aead()
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, apperror.NewCrypto().WithCause(err)
	}

	// Seal appends the tag to the ciphertext; the container stores the tag
	// in the header instead.
	sealed := gcm.Seal(nil, nonce, plain, nil)
	ciphertext, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]

	out := make([]byte, 0, headerSize+len(ciphertext))
	out = append(out, magic...)
	out = append(out, Version)
	out = append(out, nonce...)
	out = append(out, tag...)
	out = append(out, ciphertext...)
	return out, nil
}

// Decode authenticates and parses an AHBS container. Header problems yield
// FORMAT_ERROR; a failed authentication yields the generic CRYPTO_ERROR
// with no hint of whether the key or the data was at fault.
func (c *Codec) Decode(raw []byte) (*Document, error) {
	if len(raw) < headerSize {
		return nil, apperror.NewFormat("file is too short to be an AHB Sales file")
	}
	if !bytes.Equal(raw[:4], magic) {
		return nil, apperror.NewFormat("not an AHB Sales file")
	}
	if raw[4] != Version {
		return nil, apperror.NewFormat(fmt.Sprintf("unsupported container version: %d", raw[4]))
	}

	gcm, err := c.aead()
	if err != nil {
		return nil, err
	}
	nonce := raw[5 : 5+nonceSize]
	tag := raw[5+nonceSize : headerSize]
	ciphertext := raw[headerSize:]

	sealed := make([]byte, 0, len(ciphertext)+tagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, apperror.NewCrypto()
	}

	var doc Document
	if err := json.Unmarshal(plain, &doc); err != nil {
		return nil, apperror.NewFormat("document payload is not valid").WithCause(err)
	}
	if doc.SchemaVersion != SchemaVersion {
		return nil, apperror.NewFormat(fmt.Sprintf("unsupported schema version: %d", doc.SchemaVersion))
	}
	doc.Data.Normalize()
	return &doc, nil
}

func (c *Codec) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key[:])
	if err != nil {
		return nil, apperror.NewCrypto().WithCause(err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, apperror.NewCrypto().WithCause(err)
	}
	return gcm, nil
}
