package dto

import "github.com/trungle-dev/sheetbook/internal/models"

type CategoryParams struct {
	Name     string              `json:"name"`
	Type     models.CategoryType `json:"type"`
	OwnerTag models.Owner        `json:"ownerTag"`
}
