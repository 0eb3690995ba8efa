package board

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadLayout decodes a YAML layout from r. Unknown keys are rejected.
// The result is not validated; pass it to New.
//
//	size: 30
//	dice_max: 4
//	jumps:
//	  - {from: 3, to: 22}
//	  - {from: 27, to: 1}
func LoadLayout(r io.Reader) (Layout, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var l Layout
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return Layout{}, fmt.Errorf("%w: empty document", ErrLayout)
		}
		return Layout{}, fmt.Errorf("%w: %v", ErrLayout, err)
	}

	return l, nil
}

// LoadLayoutFile reads and decodes the YAML layout at path.
func LoadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("board: read layout: %w", err)
	}

	return LoadLayout(bytes.NewReader(data))
}
