package util

import (
	"hash/fnv"
	"strconv"
)

// HashString returns a uint64 hash of the input string using FNV-1a
func HashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// VisitorID returns an opaque key identifying one client on one day
func VisitorID(day, clientIP, userAgent string) string {
	return day + ":" + strconv.FormatUint(HashString(clientIP+"\x00"+userAgent), 16)
}
