package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
)

// EncodeToken creates an opaque token pointing just past the given transaction
// in newest-first order.
func EncodeToken(cursor domain.TransactionCursor) string {
	tokenStr := fmt.Sprintf("%s|%d", cursor.OccurredAt, cursor.ID)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (domain.TransactionCursor, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return domain.TransactionCursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	occurredAt, idStr, ok := strings.Cut(string(decodedBytes), "|")
	if !ok {
		return domain.TransactionCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return domain.TransactionCursor{}, fmt.Errorf("invalid pagination token format (id parse): %q", idStr)
	}
	return domain.TransactionCursor{OccurredAt: occurredAt, ID: id}, nil
}
