package dto

import "patrimonio/internal/domain/legacy"

// LegacyListFilter narrows historical inventory listings.
type LegacyListFilter struct {
	PaginationRequest
	Search      string  `form:"search"`
	OrderBy     string  `form:"orderBy"`
	ProjectCode *string `form:"proyecto"`
	BranchCode  *string `form:"sucursal"`
	AreaCode    *string `form:"area"`
	Found       *bool   `form:"encontrado"`
}

// ToFilter converts query parameters into the domain filter.
func (f *LegacyListFilter) ToFilter() legacy.ListFilter {
	return legacy.ListFilter{
		ListFilter:  f.ListFilter(f.Search, f.OrderBy),
		ProjectCode: f.ProjectCode,
		BranchCode:  f.BranchCode,
		AreaCode:    f.AreaCode,
		Found:       f.Found,
	}
}
