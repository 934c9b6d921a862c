package generator

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Version is a nominal UUID version tag.
type Version string

// Version tags. Unset is the zero value.
const (
	Unset Version = ""
	V1    Version = "v1"
	V2    Version = "v2"
	V3    Version = "v3"
	V4    Version = "v4"
)

// ErrUnknownVersion is returned when a tag is not one of v1..v4.
var ErrUnknownVersion = errors.New("unknown UUID version")

var upper = cases.Upper(language.English)

// Versions returns the selectable tags in display order.
func Versions() []Version {
	return []Version{V1, V2, V3, V4}
}

// ParseVersion parses "v1".."v4" (any case) or the bare digits "1".."4".
func ParseVersion(s string) (Version, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if len(t) == 1 {
		t = "v" + t
	}
	v := Version(t)
	if !v.Valid() {
		return Unset, fmt.Errorf("%w: %q (want one of v1, v2, v3, v4)", ErrUnknownVersion, s)
	}
	return v, nil
}

// Valid reports whether v is one of the four selectable tags.
func (v Version) Valid() bool {
	switch v {
	case V1, V2, V3, V4:
		return true
	}
	return false
}

// String returns the tag, or "unset".
func (v Version) String() string {
	if v == Unset {
		return "unset"
	}
	return string(v)
}

// Label is the selector caption, e.g. "UUID V2".
func (v Version) Label() string {
	if v == Unset {
		return ""
	}
	return "UUID " + upper.String(string(v))
}

// GenerateLabel is the caption of the manual trigger, e.g. "Generate UUID V2".
func (v Version) GenerateLabel() string {
	if v == Unset {
		return ""
	}
	return "Generate " + v.Label()
}

// MarshalText encodes Unset as "unset" so JSON never carries an empty tag.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText accepts "unset", "" or anything ParseVersion accepts.
func (v *Version) UnmarshalText(b []byte) error {
	s := string(b)
	if s == "" || s == "unset" {
		*v = Unset
		return nil
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
