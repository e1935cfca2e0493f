package manifest

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	gdexterrors "github.com/gdext-tools/gdexgen/pkg/gdext/errors"
)

// Encode serializes the manifest as a TOML document. Sections appear in
// declaration order (configuration, libraries, icons, dependencies);
// keys within a section are sorted by the encoder, which keeps output
// deterministic.
func (m *Manifest) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(m); err != nil {
		return fmt.Errorf("%w: %v", gdexterrors.ErrEncode, err)
	}
	return nil
}

// Decode parses a TOML document back into a Manifest. Used by tests and
// tooling that inspects an existing .gdextension file.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return &m, nil
}
