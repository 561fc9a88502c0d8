package plugin

import (
	"github.com/hashicorp/go-version"
	"github.com/pkg/errors"
)

var (
	ErrInvalidMetadata     = errors.New("invalid metadata")
	ErrIncompatibleVersion = errors.New("incompatible plugin version")
)

// Metadata holds the fields relevant to identification and description of a
// plugin. All four fields must be present.
type Metadata struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description" yaml:"description"`
	Author      string `json:"author" yaml:"author"`
}

// Validate ensures all four fields are present and the version parses as a
// semantic version.
func (m Metadata) Validate() error {
	if m.Name == "" {
		return errors.Wrap(ErrInvalidMetadata, "name is empty")
	}

	if m.Description == "" {
		return errors.Wrap(ErrInvalidMetadata, "description is empty")
	}

	if m.Author == "" {
		return errors.Wrap(ErrInvalidMetadata, "author is empty")
	}

	if _, err := version.NewVersion(m.Version); err != nil {
		return errors.Wrap(err, "failed to parse version")
	}

	return nil
}

// CheckCompatible reports whether the plugin's declared version satisfies the
// host's version constraint, e.g. ">= 1.0, < 2.0".
func CheckCompatible(m Metadata, constraint string) error {
	v, err := version.NewVersion(m.Version)
	if err != nil {
		return errors.Wrap(err, "failed to parse plugin version")
	}

	c, err := version.NewConstraint(constraint)
	if err != nil {
		return errors.Wrap(err, "failed to parse host constraint")
	}

	if !c.Check(v) {
		return errors.Wrapf(ErrIncompatibleVersion, "version %s does not satisfy %s", m.Version, constraint)
	}

	return nil
}
