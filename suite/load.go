package suite

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/reference"
)

//go:embed schema.cue
var schemaSrc string

// Load reads a YAML suite file.
func Load(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("read suite: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Suite{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML suite and validates it.
func Parse(data []byte) (Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Suite{}, fmt.Errorf("parse suite: %w", err)
	}
	if err := Validate(s); err != nil {
		return Suite{}, err
	}
	return s, nil
}

// Validate checks s against the suite schema and makes sure every FEN parses.
func Validate(s Suite) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile suite schema: %w", err)
	}

	v := schema.LookupPath(cue.ParsePath("#Suite")).Unify(ctx.Encode(s))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid suite: %s", cueerrors.Details(err, nil))
	}

	for _, c := range s.Cases {
		if err := reference.ValidateFEN(c.FEN); err != nil {
			return fmt.Errorf("case %q: %w", c.Name, err)
		}
	}
	return nil
}
