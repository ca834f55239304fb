package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/user"
	"github.com/incluiaqui/incluiaqui-api/internal/dto"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
	"github.com/incluiaqui/incluiaqui-api/internal/httpresp"
	"github.com/incluiaqui/incluiaqui-api/internal/middleware"
	uc "github.com/incluiaqui/incluiaqui-api/internal/usecase/user"
)

type UserHandler struct {
	get            *uc.GetUser
	updateProfile  *uc.UpdateProfile
	changePassword *uc.ChangePassword
	list           *uc.ListUsers
	adminUpdate    *uc.AdminUpdateUser
	delete         *uc.DeleteUser
}

func NewUserHandler(
	get *uc.GetUser,
	updateProfile *uc.UpdateProfile,
	changePassword *uc.ChangePassword,
	list *uc.ListUsers,
	adminUpdate *uc.AdminUpdateUser,
	del *uc.DeleteUser,
) *UserHandler {
	return &UserHandler{
		get:            get,
		updateProfile:  updateProfile,
		changePassword: changePassword,
		list:           list,
		adminUpdate:    adminUpdate,
		delete:         del,
	}
}

// --------- Requests ---------

type UpdateProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=100"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,url"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,max=100"`
}

type ListUsersQuery struct {
	dto.PageQuery

	Search string `form:"search"`
	Role   string `form:"role" binding:"omitempty,oneof=USER OWNER ADMIN"`
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE PENDING_VERIFICATION BANNED"`
}

type AdminUpdateUserRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=100"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,url"`
	Role      *string `json:"role" binding:"omitempty,oneof=USER OWNER ADMIN"`
	Status    *string `json:"status" binding:"omitempty,oneof=ACTIVE PENDING_VERIFICATION BANNED"`
}

// --------- Profile (self) ---------

func (h *UserHandler) Profile(c *gin.Context) {
	principal := middleware.Principal(c)

	u, err := h.get.Execute(c.Request.Context(), principal.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": u})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados do perfil inválidos.", err.Error())
		return
	}

	principal := middleware.Principal(c)

	u, err := h.updateProfile.Execute(c.Request.Context(), principal.ID, uc.UpdateProfileInput{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": u})
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados de alteração de senha inválidos.", err.Error())
		return
	}

	principal := middleware.Principal(c)

	err := h.changePassword.Execute(c.Request.Context(),
		principal.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Senha alterada com sucesso.")
}

// --------- Administration ---------

func (h *UserHandler) List(c *gin.Context) {
	var q ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "Parâmetros de listagem inválidos.", err.Error())
		return
	}

	result, err := h.list.Execute(c.Request.Context(), domain.ListFilter{
		Search: q.Search,
		Role:   q.Role,
		Status: q.Status,
	}, q.Page, q.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.UserListResponse{
		Users:      result.Items,
		Pagination: dto.NewPagination(q.Page, q.Limit, result.Total),
	})
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": u})
}

func (h *UserHandler) Update(c *gin.Context) {
	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados do usuário inválidos.", err.Error())
		return
	}

	principal := middleware.Principal(c)

	u, err := h.adminUpdate.Execute(c.Request.Context(), principal.ID, c.Param("id"),
		uc.AdminUpdateUserInput{
			Name:      req.Name,
			AvatarURL: req.AvatarURL,
			Role:      req.Role,
			Status:    req.Status,
		})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": u})
}

func (h *UserHandler) Delete(c *gin.Context) {
	principal := middleware.Principal(c)

	if err := h.delete.Execute(c.Request.Context(), principal.ID, c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Usuário deletado com sucesso.")
}
