package domain

import (
	"strconv"

	"github.com/google/uuid"
)

// IDFunc generates client-side identities such as "course-<uuid>".
type IDFunc func(prefix string) string

// NewID is the default IDFunc.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Sequence returns an IDFunc yielding prefix-1, prefix-2, ... per prefix.
// Not safe for concurrent use; meant for deterministic fixtures.
func Sequence() IDFunc {
	counters := map[string]int{}
	return func(prefix string) string {
		counters[prefix]++
		return prefix + "-" + strconv.Itoa(counters[prefix])
	}
}
