package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/establishment"
	"github.com/incluiaqui/incluiaqui-api/internal/dto"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
	"github.com/incluiaqui/incluiaqui-api/internal/httpresp"
	"github.com/incluiaqui/incluiaqui-api/internal/middleware"
	uc "github.com/incluiaqui/incluiaqui-api/internal/usecase/establishment"
)

type EstablishmentHandler struct {
	create    *uc.CreateEstablishment
	get       *uc.GetEstablishment
	update    *uc.UpdateEstablishment
	delete    *uc.DeleteEstablishment
	search    *uc.SearchEstablishments
	listOwned *uc.ListOwnedEstablishments
}

func NewEstablishmentHandler(
	create *uc.CreateEstablishment,
	get *uc.GetEstablishment,
	update *uc.UpdateEstablishment,
	del *uc.DeleteEstablishment,
	search *uc.SearchEstablishments,
	listOwned *uc.ListOwnedEstablishments,
) *EstablishmentHandler {
	return &EstablishmentHandler{
		create:    create,
		get:       get,
		update:    update,
		delete:    del,
		search:    search,
		listOwned: listOwned,
	}
}

// --------- Requests ---------

type CreateEstablishmentRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"required,min=10"`
	Phone       string `json:"phone" binding:"required"`
	Category    string `json:"category" binding:"required"`

	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required,len=2"`
	ZipCode      string `json:"zipCode" binding:"required"`

	// Pointers so an explicit 0 coordinate is not treated as missing by
	// the "required" rule.
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`

	CoverImageURL *string `json:"coverImageUrl" binding:"omitempty,url"`
	GooglePlaceID *string `json:"googlePlaceId"`
}

type UpdateEstablishmentRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,min=10"`
	Phone       *string `json:"phone"`
	Category    *string `json:"category"`

	Street       *string `json:"street"`
	Number       *string `json:"number"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state" binding:"omitempty,len=2"`
	ZipCode      *string `json:"zipCode"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	CoverImageURL *string `json:"coverImageUrl" binding:"omitempty,url"`
}

type SearchEstablishmentsQuery struct {
	dto.PageQuery

	Search   string `form:"search"`
	Category string `form:"category"`
	City     string `form:"city"`
	State    string `form:"state"`

	Latitude  *float64 `form:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `form:"longitude" binding:"omitempty,min=-180,max=180"`
	RadiusKm  *float64 `form:"radius" binding:"omitempty,min=0"`

	MinRating *float64 `form:"minRating" binding:"omitempty,min=0,max=5"`
}

// --------- Handlers ---------

func (h *EstablishmentHandler) Create(c *gin.Context) {
	var req CreateEstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados do estabelecimento inválidos.", err.Error())
		return
	}

	principal := middleware.Principal(c)

	created, err := h.create.Execute(c.Request.Context(), principal.ID, uc.CreateEstablishmentInput{
		Name:          req.Name,
		Description:   req.Description,
		Phone:         req.Phone,
		Category:      req.Category,
		Street:        req.Street,
		Number:        req.Number,
		Neighborhood:  req.Neighborhood,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		CoverImageURL: req.CoverImageURL,
		GooglePlaceID: req.GooglePlaceID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{"establishment": created})
}

func (h *EstablishmentHandler) Get(c *gin.Context) {
	e, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"establishment": e})
}

func (h *EstablishmentHandler) Update(c *gin.Context) {
	var req UpdateEstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados do estabelecimento inválidos.", err.Error())
		return
	}

	principal := middleware.Principal(c)

	updated, err := h.update.Execute(c.Request.Context(), principal, c.Param("id"), uc.UpdateEstablishmentInput{
		Name:          req.Name,
		Description:   req.Description,
		Phone:         req.Phone,
		Category:      req.Category,
		Street:        req.Street,
		Number:        req.Number,
		Neighborhood:  req.Neighborhood,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		CoverImageURL: req.CoverImageURL,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"establishment": updated})
}

func (h *EstablishmentHandler) Delete(c *gin.Context) {
	principal := middleware.Principal(c)

	if err := h.delete.Execute(c.Request.Context(), principal, c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Estabelecimento removido com sucesso.")
}

func (h *EstablishmentHandler) Search(c *gin.Context) {
	var q SearchEstablishmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "Parâmetros de busca inválidos.", err.Error())
		return
	}

	// Coordinates only take effect in pairs; a lone latitude or longitude
	// is treated as absent.
	if (q.Latitude == nil) != (q.Longitude == nil) {
		q.Latitude = nil
		q.Longitude = nil
	}

	result, err := h.search.Execute(c.Request.Context(), domain.SearchFilter{
		Search:    q.Search,
		Category:  q.Category,
		City:      q.City,
		State:     q.State,
		Latitude:  q.Latitude,
		Longitude: q.Longitude,
		RadiusKm:  q.RadiusKm,
		MinRating: q.MinRating,
	}, q.Page, q.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.EstablishmentListResponse{
		Establishments: result.Items,
		Pagination:     dto.NewPagination(q.Page, q.Limit, result.Total),
	})
}

// MyEstablishments lists the establishments owned by the caller.
func (h *EstablishmentHandler) MyEstablishments(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "Parâmetros de listagem inválidos.", err.Error())
		return
	}

	principal := middleware.Principal(c)

	result, err := h.listOwned.Execute(c.Request.Context(), principal, q.Page, q.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.EstablishmentListResponse{
		Establishments: result.Items,
		Pagination:     dto.NewPagination(q.Page, q.Limit, result.Total),
	})
}
