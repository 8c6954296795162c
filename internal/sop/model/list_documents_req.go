package model

import "strings"

type ListDocumentsReq struct {
	Brand    string `query:"brand"`
	Category string `query:"category"`
}

func (r *ListDocumentsReq) Validate() error {
	r.Brand = strings.TrimSpace(r.Brand)
	r.Category = strings.TrimSpace(r.Category)
	return nil
}

func (r *ListDocumentsReq) ToFilter() DocumentFilter {
	return DocumentFilter{
		Brand:    r.Brand,
		Category: r.Category,
	}
}
