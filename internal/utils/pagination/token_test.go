package pagination

import (
	"encoding/base64"
	"testing"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	cursor := domain.TransactionCursor{OccurredAt: "2024-03-01 09:00:00", ID: 42}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, cursor, decoded)
}

func TestDecodeTokenError(t *testing.T) {
	_, err := DecodeToken("this is not base64!")
	assert.ErrorContains(t, err, "base64 decode")

	_, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("no separator")))
	assert.ErrorContains(t, err, "split")

	_, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("2024-03-01 09:00:00|abc")))
	assert.ErrorContains(t, err, "id parse")

	_, err = DecodeToken(base64.URLEncoding.EncodeToString([]byte("2024-03-01 09:00:00|0")))
	assert.Error(t, err)
}
