package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/osu-mist/game-curator-api/internal/api/shared"
	"github.com/osu-mist/game-curator-api/internal/jsonapi"
	"github.com/osu-mist/game-curator-api/internal/openapi"
	"github.com/osu-mist/game-curator-api/internal/platform/logger"
	"github.com/osu-mist/game-curator-api/internal/query"
)

// patch is the attribute set of a PATCH request.
type patch interface {
	IsEmpty() bool
}

// resourceService is what a ResourceHandler needs from a service. N is the
// create input and P the partial update.
type resourceService[N any, P patch] interface {
	List(ctx context.Context, q query.Query) (*jsonapi.Document, error)
	GetByID(ctx context.Context, id int64) (*jsonapi.Document, error)
	Create(ctx context.Context, attrs N) (*jsonapi.Document, error)
	Update(ctx context.Context, id int64, p P) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ResourceHandler serves the collection and item routes of one resource.
type ResourceHandler[N any, P patch] struct {
	service      resourceService[N, P]
	resource     string
	label        string
	resourceType string
	idParam      string
	declared     []openapi.Parameter
	defaults     jsonapi.PageDefaults
}

// resourceDef names a resource for newResourceHandler.
type resourceDef struct {
	resource   string // lower-case name used in messages, e.g. "game"
	label      string // capitalized name, e.g. "Game"
	definition string // schema definition of the resource object
	path       string // collection path relative to basePath
	idParam    string // path parameter holding the id
}

func newResourceHandler[N any, P patch](
	svc resourceService[N, P],
	schema *openapi.Schema,
	def resourceDef,
) (*ResourceHandler[N, P], error) {
	resourceType, err := schema.ResourceType(def.definition)
	if err != nil {
		return nil, err
	}
	return &ResourceHandler[N, P]{
		service:      svc,
		resource:     def.resource,
		label:        def.label,
		resourceType: resourceType,
		idParam:      def.idParam,
		declared:     schema.QueryParams(def.path, http.MethodGet),
		defaults:     schema.PageDefaults(),
	}, nil
}

// Routes mounts the handlers on r, which is expected to be the collection
// path.
func (h *ResourceHandler[N, P]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{"+h.idParam+"}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Patch("/", h.Patch)
		r.Delete("/", h.Delete)
	})
}

// List handles GET on the collection.
func (h *ResourceHandler[N, P]) List(w http.ResponseWriter, r *http.Request) {
	q, err := query.Parse(r.URL.Query(), h.declared, h.defaults)
	if err != nil {
		RespondWithMappedError(w, r, err, h.resource)
		return
	}

	doc, err := h.service.List(r.Context(), q)
	if err != nil {
		RespondWithMappedError(w, r, err, h.resource)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, doc)
}

// Get handles GET on an item.
func (h *ResourceHandler[N, P]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	doc, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err, h.resource)
		return
	}
	if doc == nil {
		h.notFound(w, r)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, doc)
}

// Create handles POST on the collection.
func (h *ResourceHandler[N, P]) Create(w http.ResponseWriter, r *http.Request) {
	res, err := shared.DecodeResource[N](w, r, h.resourceType)
	if err != nil {
		RespondWithMappedError(w, r, err, h.resource)
		return
	}
	if verr := shared.ValidateRequest(res.Attributes); verr != nil {
		RespondWithMappedError(w, r, verr, h.resource)
		return
	}

	doc, err := h.service.Create(r.Context(), res.Attributes)
	if err != nil {
		RespondWithMappedError(w, r, err, h.resource)
		return
	}
	if doc == nil {
		HandleError(w, r, errNoDocument)
		return
	}

	if doc.Links != nil && doc.Links.Self != "" {
		w.Header().Set("Location", doc.Links.Self)
	}
	logger.FromContextOrDefault(r.Context(), slog.Default()).Info(h.resource+" created",
		slog.String("location", w.Header().Get("Location")))
	shared.RespondWithJSON(w, r, http.StatusCreated, doc)
}

// Patch handles PATCH on an item and responds with the updated resource.
func (h *ResourceHandler[N, P]) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	res, err := shared.DecodeResource[P](w, r, h.resourceType)
	if err != nil {
		RespondWithMappedError(w, r, err, h.resource)
		return
	}
	if res.ID != strconv.FormatInt(id, 10) {
		shared.RespondWithError(w, r,
			jsonapi.BadRequest(h.label+" id in path does not match id in body."))
		return
	}
	if res.Attributes.IsEmpty() {
		shared.RespondWithError(w, r,
			jsonapi.BadRequest("attributes must contain at least one attribute to update"))
		return
	}
	if verr := shared.ValidateRequest(res.Attributes); verr != nil {
		RespondWithMappedError(w, r, verr, h.resource)
		return
	}

	n, err := h.service.Update(r.Context(), id, res.Attributes)
	if err != nil {
		RespondWithMappedError(w, r, err, h.resource)
		return
	}
	if n < 1 {
		h.notFound(w, r)
		return
	}

	doc, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err, h.resource)
		return
	}
	if doc == nil {
		h.notFound(w, r)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, doc)
}

// Delete handles DELETE on an item.
func (h *ResourceHandler[N, P]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	n, err := h.service.Delete(r.Context(), id)
	if err != nil {
		RespondWithMappedError(w, r, err, h.resource)
		return
	}
	if n < 1 {
		h.notFound(w, r)
		return
	}

	logger.FromContextOrDefault(r.Context(), slog.Default()).Info(h.resource+" deleted",
		slog.Int64("id", id))
	shared.RespondNoContent(w)
}

// pathID reads the item id. Anything that is not a positive integer cannot
// name a row, so it is answered with 404.
func (h *ResourceHandler[N, P]) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, h.idParam), 10, 64)
	if err != nil || id < 1 {
		h.notFound(w, r)
		return 0, false
	}
	return id, true
}

func (h *ResourceHandler[N, P]) notFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, jsonapi.NotFound(NotFoundDetail(h.resource)))
}
