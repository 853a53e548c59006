package version

import (
	"errors"
	"fmt"
)

// Version is an API version token used to build route prefixes.
type Version string

const (
	V1 Version = "v1"
	V2 Version = "v2"
)

// ErrInvalidVersion is returned for tokens outside the supported set.
var ErrInvalidVersion = errors.New("invalid version")

// supported keeps declaration order for Available.
var supported = []Version{V1, V2}

// Default returns the version used when none is requested.
func Default() Version { return V1 }

func (v Version) String() string { return string(v) }

// IsValid reports whether token names a supported version.
func IsValid(token string) bool {
	_, ok := TryParse(token)
	return ok
}

// Available lists all supported version tokens.
func Available() []string {
	out := make([]string, 0, len(supported))
	for _, v := range supported {
		out = append(out, v.String())
	}
	return out
}

// Parse converts token into a Version or fails with ErrInvalidVersion.
func Parse(token string) (Version, error) {
	v, ok := TryParse(token)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, token)
	}
	return v, nil
}

// TryParse is the non-failing form of Parse.
func TryParse(token string) (Version, bool) {
	for _, v := range supported {
		if string(v) == token {
			return v, true
		}
	}
	return "", false
}

// RoutePrefix returns the path prefix for the given token.
// Without a token (or with an empty one) the default version is used.
func RoutePrefix(token ...string) (string, error) {
	if len(token) == 0 || token[0] == "" {
		return Default().String(), nil
	}
	v, err := Parse(token[0])
	if err != nil {
		return "", err
	}
	return v.String(), nil
}
