package models

import "github.com/m04kA/SMC-ResourceScheduler/internal/domain"

// CreateResourceRequest запрос на регистрацию ресурса
type CreateResourceRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// ResourceResponse ответ с данными ресурса
type ResourceResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// ResourceListResponse ответ со списком ресурсов в порядке поиска
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// FromDomainResource конвертирует domain модель в DTO
func FromDomainResource(r domain.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:   int64(r.ID),
		Name: r.Name,
	}
}

// FromDomainResourceList конвертирует список ресурсов в DTO
func FromDomainResourceList(list []domain.Resource) *ResourceListResponse {
	resp := &ResourceListResponse{
		Resources: make([]ResourceResponse, len(list)),
	}
	for i, r := range list {
		resp.Resources[i] = *FromDomainResource(r)
	}
	return resp
}
