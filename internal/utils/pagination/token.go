package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeKeysetToken creates an opaque cursor from a creation timestamp and
// the row ID, used for keyset pagination over movement listings. The ID
// breaks ties between rows sharing a timestamp.
func EncodeKeysetToken(date time.Time, id string) string {
	return base64.StdEncoding.EncodeToString([]byte(date.Format(timeFormat) + "|" + id))
}

// DecodeKeysetToken parses a cursor produced by EncodeKeysetToken.
func DecodeKeysetToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	datePart, id, ok := strings.Cut(string(decodedBytes), "|")
	if !ok {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (missing separator)")
	}

	date, err := time.Parse(timeFormat, datePart)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	return date, id, nil
}
