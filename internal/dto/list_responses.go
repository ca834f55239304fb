package dto

import "github.com/incluiaqui/incluiaqui-api/internal/models"

type EstablishmentListResponse struct {
	Establishments []models.Establishment `json:"establishments"`
	Pagination     Pagination             `json:"pagination"`
}

type ReviewListResponse struct {
	Reviews    []models.Review `json:"reviews"`
	Pagination Pagination      `json:"pagination"`
}

type UserListResponse struct {
	Users      []models.User `json:"users"`
	Pagination Pagination    `json:"pagination"`
}
