package get_free_resources

import (
	getFreeResources "github.com/m04kA/SMC-ResourceScheduler/internal/usecase/get_free_resources"
)

// FreeResourcesResponse HTTP response model
type FreeResourcesResponse struct {
	Start     int64          `json:"start"`
	End       int64          `json:"end"`
	Resources []ResourceItem `json:"resources"`
}

// ResourceItem свободный ресурс
type ResourceItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeResources.Response) *FreeResourcesResponse {
	out := &FreeResourcesResponse{
		Start:     resp.Start,
		End:       resp.End,
		Resources: make([]ResourceItem, len(resp.Resources)),
	}

	for i, r := range resp.Resources {
		out.Resources[i] = ResourceItem{ID: r.ID, Name: r.Name}
	}

	return out
}
