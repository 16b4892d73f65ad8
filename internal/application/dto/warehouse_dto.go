package dto

// CreateWarehouseRequest body para crear una bodega.
type CreateWarehouseRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"omitempty,max=300"`
}

// UpdateWarehouseRequest body para actualizar una bodega.
type UpdateWarehouseRequest struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	IsActive bool   `json:"is_active"`
}

// CreateShelfRequest body para crear un estante dentro de una bodega.
type CreateShelfRequest struct {
	Code        string `json:"code" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"omitempty,max=300"`
}

// ShelfResponse salida de un estante.
type ShelfResponse struct {
	ID          string `json:"id"`
	WarehouseID string `json:"warehouse_id"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}
