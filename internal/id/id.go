package id

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Hash returns the md5 hex digest of the concatenated parts. It is a stable
// surrogate key, not a security primitive.
func Hash(parts ...string) string {
	sum := md5.Sum([]byte(strings.Join(parts, "")))
	return hex.EncodeToString(sum[:])
}

// Account returns the surrogate id of an account name ("" for no account).
func Account(name string) string {
	if name == "" {
		return ""
	}
	return Hash(name)
}

// FormatOrdinal returns the group key for a row identified only by its
// position: "#0", "#1", ...
func FormatOrdinal(pos int) string {
	return "#" + strconv.Itoa(pos)
}

// ParseOrdinal parses "#12" into 12.
func ParseOrdinal(key string) (int, error) {
	if !strings.HasPrefix(key, "#") {
		return 0, fmt.Errorf("invalid ordinal key: %q", key)
	}
	pos, err := strconv.Atoi(key[1:])
	if err != nil {
		return 0, fmt.Errorf("invalid ordinal key %q: %w", key, err)
	}
	return pos, nil
}
