package persist

import (
	"encoding/json"
	"fmt"
)

// Marshal serializes the document as indented JSON, stamping the current
// format version.
func Marshal(d *Document) ([]byte, error) {
	d.Version = FormatVersion
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	return data, nil
}

// Unmarshal parses and validates a serialized layout. Documents from newer
// format revisions fail with ErrUnsupportedVersion; anything that does not
// parse or fails structural validation fails with ErrCorruptLayout.
func Unmarshal(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptLayout, err)
	}
	if d.Version > FormatVersion {
		return nil, fmt.Errorf("version %d: %w", d.Version, ErrUnsupportedVersion)
	}
	upgrade(&d)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// CheckFormat reports whether data is a loadable layout document without
// building any live state.
func CheckFormat(data []byte) error {
	_, err := Unmarshal(data)
	return err
}

// upgrade rewrites older documents in place to the current format. Version 0
// predates the closed-widget list and the explicit version stamp; its
// structure is otherwise identical, so upgrading only bumps the version.
func upgrade(d *Document) {
	if d.Version == 0 {
		d.Version = FormatVersion
	}
}
