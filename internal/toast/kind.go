package toast

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKind is returned by ParseKind for tags outside the closed set.
var ErrInvalidKind = errors.New("invalid toast kind")

// Kind is the category of a toast. It controls the toast's colour.
type Kind string

const (
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
)

// Kinds lists every recognized kind in display order.
var Kinds = []Kind{KindError, KindWarning, KindInfo, KindSuccess}

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindError, KindWarning, KindInfo, KindSuccess:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind converts a tag such as "Warning" into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
	return k, nil
}
