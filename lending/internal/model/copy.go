package model

import (
	"strconv"
	"strings"
)

const copySeparator = "-"

type MediaCopy struct {
	CopyID     string `json:"copyId" db:"copy_id"`
	Identifier string `json:"identifier" db:"identifier"`
	Available  bool   `json:"available" db:"available"`
}

func CopyID(identifier string, seq int) string {
	return identifier + copySeparator + strconv.Itoa(seq)
}

// CopySequence returns the numeric suffix after the last separator.
// Identifiers may contain the separator themselves (ISBNs), malformed suffixes yield 0.
func CopySequence(copyID string) int {
	i := strings.LastIndex(copyID, copySeparator)
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(copyID[i+1:])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
