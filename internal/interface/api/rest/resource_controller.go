package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"petconnect-api/internal/application/ports"
	"petconnect-api/internal/domain/pet"
	"petconnect-api/internal/domain/product"
	"petconnect-api/internal/domain/resource"
	"petconnect-api/internal/domain/vetservice"
	petDTO "petconnect-api/internal/interface/api/rest/dto/pet"
	productDTO "petconnect-api/internal/interface/api/rest/dto/product"
	serviceDTO "petconnect-api/internal/interface/api/rest/dto/vetservice"
	"petconnect-api/internal/interface/api/rest/validator"
)

// ResourceController serves the CRUD routes of one owned resource kind. Reads
// are public, writes need a session.
type ResourceController[T any, Req any, Resp any] struct {
	logger     *zap.Logger
	name       string
	manager    ports.ResourceManager[T]
	toDomain   func(Req) T
	toResponse func(T) Resp
	// category normalises the path filter; false means 400.
	category func(raw string) (string, bool)
}

type ResponseData[Resp any] struct {
	Data []Resp `json:"data"`
}

func (rc *ResourceController[T, Req, Resp]) register(g *gin.RouterGroup, authMW gin.HandlerFunc, byCategory string) {
	g.GET("", rc.ListHandler)
	g.GET(byCategory, rc.ListHandler)
	g.GET(routeResource, rc.GetHandler)
	g.POST("", authMW, rc.CreateHandler)
	g.PUT(routeResource, authMW, rc.UpdateHandler)
	g.DELETE(routeResource, authMW, rc.DeleteHandler)
}

func NewPetController(
	r *gin.Engine,
	logger *zap.Logger,
	manager ports.ResourceManager[pet.Pet],
	authMW gin.HandlerFunc,
) *ResourceController[pet.Pet, petDTO.Request, petDTO.Pet] {
	rc := &ResourceController[pet.Pet, petDTO.Request, petDTO.Pet]{
		logger:     logger,
		name:       string(resource.KindPet),
		manager:    manager,
		toDomain:   petDTO.ToDomain,
		toResponse: petDTO.ToResponse,
		category:   petTypeParam,
	}
	rc.register(r.Group(RoutePets), authMW, routePetsByType)
	return rc
}

func NewServiceController(
	r *gin.Engine,
	logger *zap.Logger,
	manager ports.ResourceManager[vetservice.Service],
	authMW gin.HandlerFunc,
) *ResourceController[vetservice.Service, serviceDTO.Request, serviceDTO.Service] {
	rc := &ResourceController[vetservice.Service, serviceDTO.Request, serviceDTO.Service]{
		logger:     logger,
		name:       string(resource.KindVetService),
		manager:    manager,
		toDomain:   serviceDTO.ToDomain,
		toResponse: serviceDTO.ToResponse,
	}
	rc.register(r.Group(RouteServices), authMW, routeResourceCategory)
	return rc
}

// ListHandler lists active resources. owner_id wins over a category in the path.
func (rc *ResourceController[T, Req, Resp]) ListHandler(c *gin.Context) {
	var f resource.Filter
	if raw := c.Param("category"); raw != "" {
		category, ok := rc.categoryParam(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown " + rc.name + " category: " + raw})
			return
		}
		f.Category = category
	}
	if raw := c.Query("owner_id"); raw != "" {
		ok, owner := validator.IsUUID(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id must be a valid UUID"})
			return
		}
		f.OwnerID = &owner
	}

	items, err := rc.manager.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, rc.logger, rc.name+" List()", err)
		return
	}

	out := make([]Resp, len(items))
	for i, item := range items {
		out[i] = rc.toResponse(item)
	}
	c.JSON(http.StatusOK, ResponseData[Resp]{Data: out})
}

func (rc *ResourceController[T, Req, Resp]) categoryParam(raw string) (string, bool) {
	if rc.category != nil {
		return rc.category(raw)
	}
	category := resource.CleanText(raw)
	return category, category != ""
}

func petTypeParam(raw string) (string, bool) {
	t, ok := pet.ParseType(strings.ToUpper(resource.CleanText(raw)))
	return string(t), ok
}

func (rc *ResourceController[T, Req, Resp]) GetHandler(c *gin.Context) {
	id, ok := resourceIDParam(c)
	if !ok {
		return
	}

	item, err := rc.manager.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, rc.logger, rc.name+" GetByID()", err)
		return
	}

	c.JSON(http.StatusOK, rc.toResponse(*item))
}

func (rc *ResourceController[T, Req, Resp]) CreateHandler(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	req, ok := rc.bind(c)
	if !ok {
		return
	}

	item, err := rc.manager.Create(c.Request.Context(), rc.toDomain(req), actor.ID)
	if err != nil {
		writeError(c, rc.logger, rc.name+" Create()", err)
		return
	}

	c.JSON(http.StatusCreated, rc.toResponse(*item))
}

func (rc *ResourceController[T, Req, Resp]) UpdateHandler(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := resourceIDParam(c)
	if !ok {
		return
	}
	req, ok := rc.bind(c)
	if !ok {
		return
	}

	item, err := rc.manager.Update(c.Request.Context(), id, rc.toDomain(req), actor.ID)
	if err != nil {
		writeError(c, rc.logger, rc.name+" Update()", err)
		return
	}

	c.JSON(http.StatusOK, rc.toResponse(*item))
}

func (rc *ResourceController[T, Req, Resp]) DeleteHandler(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := resourceIDParam(c)
	if !ok {
		return
	}

	if err := rc.manager.Delete(c.Request.Context(), id, actor.ID); err != nil {
		writeError(c, rc.logger, rc.name+" Delete()", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (rc *ResourceController[T, Req, Resp]) bind(c *gin.Context) (Req, bool) {
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c)
		return req, false
	}
	if details := validator.Validate(req); details != nil {
		badRequest(c, details)
		return req, false
	}
	return req, true
}

func resourceIDParam(c *gin.Context) (uuid.UUID, bool) {
	ok, id := validator.IsUUID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return uuid.UUID{}, false
	}
	return id, true
}

type ProductController struct {
	*ResourceController[product.Product, productDTO.Request, productDTO.Product]

	products ports.ProductManager
}

func NewProductController(
	r *gin.Engine,
	logger *zap.Logger,
	manager ports.ProductManager,
	authMW gin.HandlerFunc,
) *ProductController {
	pc := &ProductController{
		ResourceController: &ResourceController[product.Product, productDTO.Request, productDTO.Product]{
			logger:     logger,
			name:       string(resource.KindProduct),
			manager:    manager,
			toDomain:   productDTO.ToDomain,
			toResponse: productDTO.ToResponse,
		},
		products: manager,
	}

	g := r.Group(RouteProducts)
	pc.register(g, authMW, routeResourceCategory)
	g.PUT(routeProductStock, authMW, pc.UpdateStockHandler)

	return pc
}

func (pc *ProductController) UpdateStockHandler(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := resourceIDParam(c)
	if !ok {
		return
	}

	var req productDTO.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidJSON(c)
		return
	}
	if details := validator.Validate(req); details != nil {
		badRequest(c, details)
		return
	}

	p, err := pc.products.UpdateStock(c.Request.Context(), id, *req.Stock, actor.ID)
	if err != nil {
		writeError(c, pc.logger, "product UpdateStock()", err)
		return
	}

	c.JSON(http.StatusOK, productDTO.ToResponse(*p))
}
