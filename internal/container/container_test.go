package container

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ahbsales/internal/core/apperror"
	"ahbsales/internal/core/clock"
	"ahbsales/internal/core/types"
	"ahbsales/internal/domain/ledger"
)

func testKey(b byte) Key {
	var k Key
	for i := range k {
		k[i] = b
	}
	return k
}

func testClock() *clock.Fixed {
	return &clock.Fixed{T: time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)}
}

// sampleDocument builds a document with Bengali text and posted records so
// the round trip exercises UTF-8 payloads and every collection.
func sampleDocument(t *testing.T) *Document {
	t.Helper()
	doc := NewDocument(testClock())
	st := ledger.NewStore(&doc.Data, ledger.WithClock(testClock()))

	_, err := st.AddProduct(ledger.ProductInput{
		ID: 1, NameBn: "চাল", NameEn: "Rice", Price: types.N(55), Stock: types.N(10),
	})
	require.NoError(t, err)
	_, err = st.AddCustomer(ledger.CustomerInput{ID: 1, NameBn: "রহিম", Phone: "01700000000"})
	require.NoError(t, err)
	_, err = st.PostPurchase(ledger.PurchaseInput{ProductID: 1, Quantity: types.N(5)})
	require.NoError(t, err)
	cid := 1
	_, err = st.PostInvoice(ledger.InvoiceInput{
		CustomerID: &cid,
		Lines:      []ledger.InvoiceLineInput{{ProductID: 1, Quantity: types.N(2)}},
		Paid:       types.N(110),
	})
	require.NoError(t, err)
	return doc
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := NewCodec(testKey(0x42))
	doc := sampleDocument(t)

	raw, err := codec.Encode(doc)
	require.NoError(t, err)

	got, err := codec.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestEncodeHeaderLayout(t *testing.T) {
	codec := NewCodec(testKey(0x42))
	raw, err := codec.Encode(NewDocument(testClock()))
	require.NoError(t, err)

	require.Greater(t, len(raw), headerSize)
	assert.Equal(t, []byte("AHBS"), raw[:4])
	assert.Equal(t, byte(Version), raw[4])
}

func TestEncodeFreshNoncePerCall(t *testing.T) {
	codec := NewCodec(testKey(0x42))
	doc := NewDocument(testClock())

	a, err := codec.Encode(doc)
	require.NoError(t, err)
	b, err := codec.Encode(doc)
	require.NoError(t, err)
	assert.NotEqual(t, a[5:5+nonceSize], b[5:5+nonceSize])
}

func TestDecodeWrongKey(t *testing.T) {
	raw, err := NewCodec(testKey(0x42)).Encode(sampleDocument(t))
	require.NoError(t, err)

	_, err = NewCodec(testKey(0x43)).Decode(raw)
	require.Error(t, err)
	assert.True(t, apperror.IsCrypto(err))
}

func TestDecodeTamperedBytes(t *testing.T) {
	codec := NewCodec(testKey(0x42))
	raw, err := codec.Encode(sampleDocument(t))
	require.NoError(t, err)

	// Flipping any byte of the nonce, tag or ciphertext must fail closed,
	// always with the same indistinguishable crypto error.
	for _, offset := range []int{5, 10, 17, 30, headerSize, len(raw) - 1} {
		tampered := append([]byte(nil), raw...)
		tampered[offset] ^= 0x01
		_, err := codec.Decode(tampered)
		require.Error(t, err, "offset %d", offset)
		assert.True(t, apperror.IsCrypto(err), "offset %d: %v", offset, err)
	}
}

func TestDecodeHeaderErrors(t *testing.T) {
	codec := NewCodec(testKey(0x42))
	raw, err := codec.Encode(NewDocument(testClock()))
	require.NoError(t, err)

	t.Run("too short", func(t *testing.T) {
		_, err := codec.Decode(raw[:headerSize-1])
		assert.True(t, apperror.IsFormat(err))
	})
	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), raw...)
		copy(bad, "ZZZZ")
		_, err := codec.Decode(bad)
		assert.True(t, apperror.IsFormat(err))
	})
	t.Run("unknown container version", func(t *testing.T) {
		bad := append([]byte(nil), raw...)
		bad[4] = 0x02
		_, err := codec.Decode(bad)
		assert.True(t, apperror.IsFormat(err))
	})
	t.Run("empty input", func(t *testing.T) {
		_, err := codec.Decode(nil)
		assert.True(t, apperror.IsFormat(err))
	})
}

func TestDecodeUnknownSchemaVersion(t *testing.T) {
	codec := NewCodec(testKey(0x42))
	doc := NewDocument(testClock())
	doc.SchemaVersion = 2

	raw, err := codec.Encode(doc)
	require.NoError(t, err)

	_, err = codec.Decode(raw)
	require.Error(t, err)
	assert.True(t, apperror.IsFormat(err))
}

func TestDecodeNormalizesLedger(t *testing.T) {
	codec := NewCodec(testKey(0x42))
	doc := NewDocument(testClock())
	doc.Data.Products = nil
	doc.Data.InvoiceSeq = 0

	raw, err := codec.Encode(doc)
	require.NoError(t, err)
	got, err := codec.Decode(raw)
	require.NoError(t, err)

	assert.NotNil(t, got.Data.Products)
	assert.Equal(t, 1, got.Data.InvoiceSeq)
}

func TestCryptoErrorRevealsNothing(t *testing.T) {
	// Wrong key and corrupted data must be textually identical to the
	// caller; nothing may hint at which one happened.
	raw, err := NewCodec(testKey(0x01)).Encode(NewDocument(testClock()))
	require.NoError(t, err)

	_, wrongKeyErr := NewCodec(testKey(0x02)).Decode(raw)
	tampered := append([]byte(nil), raw...)
	tampered[len(tampered)-1] ^= 0xFF
	_, corruptErr := NewCodec(testKey(0x01)).Decode(tampered)

	require.Error(t, wrongKeyErr)
	require.Error(t, corruptErr)
	assert.Equal(t, wrongKeyErr.Error(), corruptErr.Error())
}
