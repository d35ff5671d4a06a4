package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeKeysetToken(t *testing.T) {
	// Test with a known date and ID
	testDate := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	token := EncodeKeysetToken(testDate, "mv-001")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeKeysetToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, testDate, decodedDate, "Date should match after decode")
	assert.Equal(t, "mv-001", decodedID, "ID should match after decode")

	// Test with current time including nanoseconds
	now := time.Now().UTC()
	nowToken := EncodeKeysetToken(now, "mv-002")

	decodedNow, decodedID, err := DecodeKeysetToken(nowToken)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.True(t, now.Equal(decodedNow), "Date should match after decode")
	assert.Equal(t, "mv-002", decodedID, "ID should match after decode")
}

func TestKeysetTokenDistinguishesEqualTimestamps(t *testing.T) {
	// Two rows sharing a timestamp must produce distinct cursors so the
	// listing can resume past the first without skipping the second.
	sharedTime := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	tokenA := EncodeKeysetToken(sharedTime, "mv-aaa")
	tokenB := EncodeKeysetToken(sharedTime, "mv-bbb")
	assert.NotEqual(t, tokenA, tokenB, "Cursors for distinct rows should differ")

	dateA, idA, err := DecodeKeysetToken(tokenA)
	assert.NoError(t, err)
	dateB, idB, err := DecodeKeysetToken(tokenB)
	assert.NoError(t, err)
	assert.True(t, dateA.Equal(dateB), "Timestamps should round-trip equal")
	assert.Equal(t, "mv-aaa", idA)
	assert.Equal(t, "mv-bbb", idB)
}

func TestDecodeKeysetTokenError(t *testing.T) {
	// Test invalid base64
	_, _, err := DecodeKeysetToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test valid base64 without the separator
	_, _, err = DecodeKeysetToken("bm90YWRhdGU=") // "notadate"
	assert.Error(t, err, "Should return an error for a missing separator")
	assert.Contains(t, err.Error(), "separator", "Error should mention the missing separator")

	// Test valid base64 with a separator but a bad date
	_, _, err = DecodeKeysetToken("bm90YWRhdGV8bXYtMDAx") // "notadate|mv-001"
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "date parse", "Error should mention date parsing issue")
}
