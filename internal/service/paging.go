package service

import "github.com/MKhiriev/axle-client/internal/storage"

// DefaultPageSize applies when a list request carries no positive page size.
const DefaultPageSize = 20

// pageWindow converts a 1-based page number and size into a storage window.
// Non-positive values fall back to the first page and [DefaultPageSize].
func pageWindow(page, pageSize int32) storage.Page {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return storage.Page{
		Offset: uint64(page-1) * uint64(pageSize),
		Limit:  uint64(pageSize),
	}
}
