// Package seed loads and validates the activity catalogue that populates
// the directory at startup. The default catalogue is embedded; deployments
// can point the service at their own file via configuration. Either way the
// document must satisfy the embedded JSON Schema before it is decoded.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mergington/activities/internal/domain/model"
	"github.com/xeipuuv/gojsonschema"
)

// Sentinel kinds for seed errors.
var (
	ErrReadCatalogue    = errors.New("read catalogue failed")
	ErrInvalidCatalogue = errors.New("invalid catalogue")
)

//go:embed activities.json
var embeddedCatalogue []byte

//go:embed schema.json
var catalogueSchema []byte

// Load returns the validated activity catalogue. With an empty path the
// embedded default is used; otherwise the file at path is read instead.
func Load(ctx context.Context, path string) ([]model.Activity, error) {
	doc := embeddedCatalogue
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadCatalogue, path, err)
		}
		doc = data
	}
	return parse(ctx, doc)
}

// parse validates doc against the catalogue schema and decodes it.
func parse(_ context.Context, doc []byte) ([]model.Activity, error) {
	schemaLoader := gojsonschema.NewBytesLoader(catalogueSchema)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalogue, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalogue, errs)
	}

	var activities []model.Activity
	if err := json.Unmarshal(doc, &activities); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalogue, err)
	}

	for _, a := range activities {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalogue, err)
		}
	}
	return activities, nil
}
