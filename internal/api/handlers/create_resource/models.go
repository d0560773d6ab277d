package create_resource

import (
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/catalog/models"
)

// CreateResourceRequest HTTP request model. Тело может быть пустым - ресурс без имени.
type CreateResourceRequest struct {
	Name string `json:"name"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateResourceRequest) ToServiceRequest() *models.CreateResourceRequest {
	return &models.CreateResourceRequest{Name: r.Name}
}
