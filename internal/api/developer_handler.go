package api

import (
	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/openapi"
	"github.com/osu-mist/game-curator-api/internal/service"
)

// DeveloperHandler handles /developers requests.
type DeveloperHandler = ResourceHandler[domain.NewDeveloper, domain.DeveloperPatch]

// NewDeveloperHandler creates a new DeveloperHandler.
func NewDeveloperHandler(developers service.DeveloperService, schema *openapi.Schema) (*DeveloperHandler, error) {
	return newResourceHandler[domain.NewDeveloper, domain.DeveloperPatch](developers, schema, resourceDef{
		resource:   "developer",
		label:      "Developer",
		definition: "DeveloperResource",
		path:       "/developers",
		idParam:    "developerId",
	})
}
