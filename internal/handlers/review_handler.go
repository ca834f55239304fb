package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/review"
	"github.com/incluiaqui/incluiaqui-api/internal/dto"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
	"github.com/incluiaqui/incluiaqui-api/internal/httpresp"
	"github.com/incluiaqui/incluiaqui-api/internal/middleware"
	uc "github.com/incluiaqui/incluiaqui-api/internal/usecase/review"
)

type ReviewHandler struct {
	create *uc.CreateReview
	get    *uc.GetReview
	update *uc.UpdateReview
	delete *uc.DeleteReview
	list   *uc.ListReviews
	stats  *uc.EstablishmentStats
}

func NewReviewHandler(
	create *uc.CreateReview,
	get *uc.GetReview,
	update *uc.UpdateReview,
	del *uc.DeleteReview,
	list *uc.ListReviews,
	stats *uc.EstablishmentStats,
) *ReviewHandler {
	return &ReviewHandler{
		create: create,
		get:    get,
		update: update,
		delete: del,
		list:   list,
		stats:  stats,
	}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	EstablishmentID string  `json:"establishmentId" binding:"required,uuid"`
	Rating          int     `json:"rating" binding:"required,min=1,max=5"`
	Title           *string `json:"title" binding:"omitempty,max=100"`
	Comment         *string `json:"comment" binding:"omitempty,max=2000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Title   *string `json:"title" binding:"omitempty,max=100"`
	Comment *string `json:"comment" binding:"omitempty,max=2000"`
}

type ListReviewsQuery struct {
	dto.PageQuery

	EstablishmentID string `form:"establishmentId" binding:"omitempty,uuid"`
	UserID          string `form:"userId" binding:"omitempty,uuid"`
	MinRating       *int   `form:"minRating" binding:"omitempty,min=1,max=5"`
	MaxRating       *int   `form:"maxRating" binding:"omitempty,min=1,max=5"`
}

// --------- Handlers ---------

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados da avaliação inválidos.", err.Error())
		return
	}

	principal := middleware.Principal(c)

	created, err := h.create.Execute(c.Request.Context(), principal, uc.CreateReviewInput{
		EstablishmentID: req.EstablishmentID,
		Rating:          req.Rating,
		Title:           req.Title,
		Comment:         req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{"review": created})
}

func (h *ReviewHandler) Get(c *gin.Context) {
	r, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"review": r})
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados da avaliação inválidos.", err.Error())
		return
	}

	principal := middleware.Principal(c)

	updated, err := h.update.Execute(c.Request.Context(), principal, c.Param("id"), uc.UpdateReviewInput{
		Rating:  req.Rating,
		Title:   req.Title,
		Comment: req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"review": updated})
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	principal := middleware.Principal(c)

	if err := h.delete.Execute(c.Request.Context(), principal, c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Avaliação removida com sucesso.")
}

func (h *ReviewHandler) List(c *gin.Context) {
	var q ListReviewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "Parâmetros de listagem inválidos.", err.Error())
		return
	}

	result, err := h.list.Execute(c.Request.Context(), domain.ListFilter{
		EstablishmentID: q.EstablishmentID,
		AuthorID:        q.UserID,
		MinRating:       q.MinRating,
		MaxRating:       q.MaxRating,
	}, q.Page, q.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.ReviewListResponse{
		Reviews:    result.Items,
		Pagination: dto.NewPagination(q.Page, q.Limit, result.Total),
	})
}

// MyReviews lists the caller's reviews, newest first.
func (h *ReviewHandler) MyReviews(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "Parâmetros de listagem inválidos.", err.Error())
		return
	}

	principal := middleware.Principal(c)

	result, err := h.list.Execute(c.Request.Context(), domain.ListFilter{
		AuthorID: principal.ID,
	}, q.Page, q.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.ReviewListResponse{
		Reviews:    result.Items,
		Pagination: dto.NewPagination(q.Page, q.Limit, result.Total),
	})
}

// Stats aggregates the rating figures of one establishment.
func (h *ReviewHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context(), c.Param("establishmentId"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"stats": stats})
}
