package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beetlebot/itinerary-cli/internal/core"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Load reads a recommendation payload from path, or from stdin when path is "-".
func Load(path string) (*core.Recommendation, error) {
	if path == "-" {
		return Decode(os.Stdin, FormatJSON)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open payload: %w", err)
	}
	defer f.Close()

	rec, err := Decode(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

func Decode(r io.Reader, format Format) (*core.Recommendation, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	var rec core.Recommendation
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &rec)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(&rec)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", format, err)
	}

	if err := Validate(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Validate reports every structural problem in the payload at once.
func Validate(rec *core.Recommendation) error {
	var errs []error
	seen := make(map[string]bool)

	check := func(list []core.Segment, kind core.SegmentKind) {
		for _, seg := range list {
			if seg.ID == "" {
				errs = append(errs, fmt.Errorf("%s segment without id", kind))
				continue
			}
			if seen[seg.ID] {
				errs = append(errs, fmt.Errorf("duplicate segment id %q", seg.ID))
			}
			seen[seg.ID] = true

			optIDs := make(map[string]bool)
			for _, o := range seg.Options {
				if o.ID == "" {
					errs = append(errs, fmt.Errorf("segment %s: option without id", seg.ID))
					continue
				}
				if optIDs[o.ID] {
					errs = append(errs, fmt.Errorf("segment %s: duplicate option id %q", seg.ID, o.ID))
				}
				optIDs[o.ID] = true
				if err := o.Cost.Validate(); err != nil {
					errs = append(errs, fmt.Errorf("segment %s option %s: %w", seg.ID, o.ID, err))
				}
			}
		}
	}
	check(rec.Transport, core.KindTransport)
	check(rec.Accommodations, core.KindAccommodation)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return nil
}
