package fixtures

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/pulsehq/pulse-backend-go/internal/domain/badge"
)

//go:embed badges.yaml
var badgeCatalogYAML []byte

type badgeCatalog struct {
	Badges []badge.Badge `yaml:"badges"`
}

var (
	badgeOnce sync.Once
	badgeList []badge.Badge
)

// Badges returns the embedded badge catalog in file order. The slice is a
// fresh copy on every call.
func Badges() []badge.Badge {
	badgeOnce.Do(func() {
		var catalog badgeCatalog
		if err := yaml.Unmarshal(badgeCatalogYAML, &catalog); err != nil {
			panic("fixtures: parsing badge catalog: " + err.Error())
		}
		badgeList = catalog.Badges
	})

	out := make([]badge.Badge, len(badgeList))
	copy(out, badgeList)
	return out
}
