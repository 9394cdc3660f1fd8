package badge

// Badge is one catalog entry. The catalog is seeded from an embedded YAML
// file, so listings are identical across processes and across repeated
// calls with the same query.
type Badge struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
	Points      int    `json:"points" yaml:"points"`
}
