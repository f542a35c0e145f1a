package services

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"tripplanner/metrics"
)

//go:embed schema/itinerary.schema.json
var itinerarySchema []byte

var itinerarySchemaLoader = gojsonschema.NewBytesLoader(itinerarySchema)

// ExportJSON renders the itinerary as an indented JSON document.
func ExportJSON(it *Itinerary) ([]byte, error) {
	data, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding itinerary: %w", err)
	}
	metrics.ExportsRendered.WithLabelValues("json").Inc()
	return data, nil
}

// ImportJSON validates a document produced by ExportJSON and decodes it.
func ImportJSON(data []byte) (*Itinerary, error) {
	result, err := gojsonschema.Validate(itinerarySchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(errs, "; "))
	}

	var it Itinerary
	if err := json.Unmarshal(data, &it); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if len(it.Plans) != it.Days {
		return nil, fmt.Errorf("%w: %d day plans for a %d-day trip", ErrInvalidDocument, len(it.Plans), it.Days)
	}
	return &it, nil
}

// ExportFilename builds a download name like itinerary_Paris_France.pdf.
// Spaces become underscores; path and shell metacharacters are dropped.
func ExportFilename(location, ext string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(location) {
		switch {
		case r == ' ':
			b.WriteRune('_')
		case strings.ContainsRune(`/\:*?"<>|,;`, r), r < 0x20:
		default:
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		name = "trip"
	}
	return "itinerary_" + name + "." + strings.TrimPrefix(ext, ".")
}
