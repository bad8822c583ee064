package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jonathan/skillmatch/internal/schemas"
)

//go:embed data/taxonomy.json
var taxonomyJSON []byte

//go:embed data/taxonomy.schema.json
var taxonomySchema []byte

// Load validates the embedded taxonomy data against its schema and builds
// the index. A schema violation is returned as an error; callers treat it
// as fatal since the data ships inside the binary.
func Load() (*Index, error) {
	if err := schemas.ValidateJSONString(string(taxonomySchema), string(taxonomyJSON)); err != nil {
		return nil, fmt.Errorf("taxonomy data failed schema validation: %w", err)
	}

	var d data
	if err := json.Unmarshal(taxonomyJSON, &d); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy data: %w", err)
	}

	return buildIndex(&d), nil
}

// MustLoad is Load for program startup paths where a broken embedded
// taxonomy cannot be recovered from.
func MustLoad() *Index {
	idx, err := Load()
	if err != nil {
		panic(err)
	}
	return idx
}
