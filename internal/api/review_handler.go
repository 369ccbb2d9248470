package api

import (
	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/openapi"
	"github.com/osu-mist/game-curator-api/internal/service"
)

// ReviewHandler handles /reviews requests.
type ReviewHandler = ResourceHandler[domain.NewReview, domain.ReviewPatch]

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviews service.ReviewService, schema *openapi.Schema) (*ReviewHandler, error) {
	return newResourceHandler[domain.NewReview, domain.ReviewPatch](reviews, schema, resourceDef{
		resource:   "review",
		label:      "Review",
		definition: "ReviewResource",
		path:       "/reviews",
		idParam:    "reviewId",
	})
}
