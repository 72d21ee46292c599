package db

import (
	"fmt"

	"teamboard/internal/constants"
)

// PaginationOptions represents pagination parameters
type PaginationOptions struct {
	Page     int `json:"page" query:"page"`
	PageSize int `json:"page_size" query:"page_size"`
}

// DefaultPaginationOptions returns default pagination settings
func DefaultPaginationOptions() PaginationOptions {
	return PaginationOptions{
		Page:     1,
		PageSize: constants.DefaultActivityListLimit,
	}
}

// Normalize fills zero values with the defaults
func (p PaginationOptions) Normalize() PaginationOptions {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = constants.DefaultActivityListLimit
	}
	return p
}

// Validate checks if pagination options are valid
func (p PaginationOptions) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("page must be >= 1")
	}
	if p.PageSize < 1 || p.PageSize > constants.MaxActivityListLimit {
		return fmt.Errorf("page_size must be between 1 and %d", constants.MaxActivityListLimit)
	}
	return nil
}

// Offset returns the number of rows to skip
func (p PaginationOptions) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// BuildLimitClause builds the LIMIT/OFFSET clause for SQL queries
func (p PaginationOptions) BuildLimitClause() string {
	return fmt.Sprintf("LIMIT %d OFFSET %d", p.PageSize, p.Offset())
}

// PaginatedResponse represents a paginated response
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// NewPaginatedResponse creates a new paginated response
func NewPaginatedResponse[T any](data []T, options PaginationOptions, totalItems int) *PaginatedResponse[T] {
	totalPages := (totalItems + options.PageSize - 1) / options.PageSize
	if data == nil {
		data = []T{}
	}
	return &PaginatedResponse[T]{
		Data:       data,
		Page:       options.Page,
		PageSize:   options.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
