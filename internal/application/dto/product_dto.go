package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para crear un producto.
type CreateProductRequest struct {
	SKU           string          `json:"sku" validate:"required,min=1,max=64"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Barcode       *string         `json:"barcode,omitempty"`
	CategoryID    *string         `json:"category_id,omitempty"`
	UnitID        string          `json:"unit_id" validate:"required,uuid"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	Description   string          `json:"description,omitempty"`
}

// UpdateProductRequest body para actualizar un producto. Campos nil no cambian.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Barcode       *string          `json:"barcode,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
	UnitID        *string          `json:"unit_id,omitempty"`
	MinStockLevel *decimal.Decimal `json:"min_stock_level,omitempty"`
	Description   *string          `json:"description,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Barcode       *string         `json:"barcode,omitempty"`
	CategoryID    *string         `json:"category_id,omitempty"`
	UnitID        string          `json:"unit_id"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	Description   string          `json:"description,omitempty"`
	IsActive      bool            `json:"is_active"`
}

// CreateCategoryRequest body para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateUnitRequest body para crear una unidad de medida.
type CreateUnitRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=50"`
	ShortCode string `json:"short_code" validate:"required,min=1,max=10"`
}

// UnitResponse salida de una unidad de medida.
type UnitResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortCode string `json:"short_code"`
	IsActive  bool   `json:"is_active"`
}
