package hooplab

import "embed"

// CatalogFS holds the built-in workout catalog shipped with the binary.
//
//go:embed catalog/workouts.yaml
var CatalogFS embed.FS

// DefaultCatalogPath is the location of the embedded catalog within CatalogFS.
const DefaultCatalogPath = "catalog/workouts.yaml"
