package capabilities

import (
	"os"

	"github.com/pkg/errors"
)

var ErrFileNotFound = errors.New("file not found")

// FileConfig is configuration for the file capability.
type FileConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// FileCapability grants a plugin read access to the host's filesystem.
type FileCapability interface {
	// Exists reports whether the given path exists. A disabled capability
	// reports every path as absent.
	Exists(path string) bool

	// Size returns the byte size of the file at the given path.
	Size(path string) (int64, error)
}

type defaultFileSource struct {
	config FileConfig
}

// DefaultFileSource returns an os-backed file source.
func DefaultFileSource(config FileConfig) FileCapability {
	f := &defaultFileSource{
		config: config,
	}

	return f
}

func (f *defaultFileSource) Exists(path string) bool {
	if !f.config.Enabled {
		return false
	}

	_, err := os.Stat(path)

	return err == nil
}

func (f *defaultFileSource) Size(path string) (int64, error) {
	if !f.config.Enabled {
		return 0, ErrCapabilityNotEnabled
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrFileNotFound
		}

		return 0, errors.Wrap(err, "failed to Stat")
	}

	return info.Size(), nil
}
