package gallery

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// DefaultVersion is assumed when a document omits its version.
const DefaultVersion = "1.0.0"

// SupportedVersions is the semver constraint a document version must meet.
const SupportedVersions = "^1"

// ErrUnsupportedVersion is returned for versions outside SupportedVersions.
var ErrUnsupportedVersion = errors.New("unsupported gallery document version")

// CheckVersion parses a document version ("1", "1.2", "1.2.3" are all
// accepted) and checks it against SupportedVersions.
func CheckVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrUnsupportedVersion, version, err)
	}

	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", SupportedVersions, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("%w %q (supported: %s)", ErrUnsupportedVersion, version, SupportedVersions)
	}

	return nil
}
