package api

import (
	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/openapi"
	"github.com/osu-mist/game-curator-api/internal/service"
)

// GameHandler handles /games requests.
type GameHandler = ResourceHandler[domain.NewGame, domain.GamePatch]

// NewGameHandler creates a new GameHandler.
func NewGameHandler(games service.GameService, schema *openapi.Schema) (*GameHandler, error) {
	return newResourceHandler[domain.NewGame, domain.GamePatch](games, schema, resourceDef{
		resource:   "game",
		label:      "Game",
		definition: "GameResource",
		path:       "/games",
		idParam:    "gameId",
	})
}
