package models

import (
	"encoding/json"
	"time"
)

type ProductStatusType string

const (
	ProductStatusDraft     ProductStatusType = "draft"
	ProductStatusPublished ProductStatusType = "published"
	ProductStatusSold      ProductStatusType = "sold"
	ProductStatusArchived  ProductStatusType = "archived"
)

// Product is an artwork listed on the marketplace. Field names follow the
// upstream API wire format; Artist may arrive as a numeric reference or an
// embedded profile object, so it is kept raw and ArtistName carries the
// display value.
type Product struct {
	ID           int               `json:"id"`
	Artist       json.RawMessage   `json:"artist,omitempty"`
	ArtistName   string            `json:"artist_name,omitempty"`
	Title        string            `json:"title"`
	Slug         string            `json:"slug,omitempty"`
	Description  string            `json:"description"`
	Category     int               `json:"category,omitempty"`
	CategoryName string            `json:"category_name,omitempty"`
	Tags         []string          `json:"tags,omitempty"`
	Price        string            `json:"price"`
	Dimensions   string            `json:"dimensions,omitempty"`
	Medium       string            `json:"medium,omitempty"`
	YearCreated  int               `json:"year_created,omitempty"`
	IsOriginal   bool              `json:"is_original,omitempty"`
	IsFramed     bool              `json:"is_framed,omitempty"`
	Status       ProductStatusType `json:"status"`
	Featured     bool              `json:"featured,omitempty"`
	ViewsCount   int               `json:"views_count"`
	LikesCount   int               `json:"likes_count"`
	ImageURL     string            `json:"image_url,omitempty"`
	CreatedAt    time.Time         `json:"created_at,omitempty"`
	UpdatedAt    time.Time         `json:"updated_at,omitempty"`
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active,omitempty"`
}

// ProductForm is the artist-side product authoring input. Title, price and
// description are blocked at the input boundary when missing.
type ProductForm struct {
	Title       string            `json:"title" validate:"required"`
	Price       string            `json:"price" validate:"required"`
	Description string            `json:"description" validate:"required"`
	Medium      string            `json:"medium"`
	Dimensions  string            `json:"dimensions"`
	YearCreated int               `json:"year_created"`
	Status      ProductStatusType `json:"status" validate:"omitempty,oneof=draft published sold archived"`
	ImageURL    string            `json:"image_url"`
}

// ProductPatch carries a partial product update; nil fields are left as-is.
type ProductPatch struct {
	Title       *string            `json:"title,omitempty"`
	Price       *string            `json:"price,omitempty"`
	Description *string            `json:"description,omitempty"`
	Medium      *string            `json:"medium,omitempty"`
	Dimensions  *string            `json:"dimensions,omitempty"`
	YearCreated *int               `json:"year_created,omitempty"`
	Status      *ProductStatusType `json:"status,omitempty"`
	ImageURL    *string            `json:"image_url,omitempty"`
}

// Apply merges the patch over a copy of the product and returns it.
func (p ProductPatch) Apply(product Product) Product {
	if p.Title != nil {
		product.Title = *p.Title
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Medium != nil {
		product.Medium = *p.Medium
	}
	if p.Dimensions != nil {
		product.Dimensions = *p.Dimensions
	}
	if p.YearCreated != nil {
		product.YearCreated = *p.YearCreated
	}
	if p.Status != nil {
		product.Status = *p.Status
	}
	if p.ImageURL != nil {
		product.ImageURL = *p.ImageURL
	}
	return product
}
