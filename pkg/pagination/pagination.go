package pagination

import (
	"VideoTube.com/pkg/constants"
)

// Params is the page/limit window shared by every list view.
type Params struct {
	PageNum  int64 `json:"page_num"`
	PageSize int64 `json:"page_size"`
}

// Normalize applies the 1-based page default and the size bounds.
func (p Params) Normalize() Params {
	if p.PageNum <= 0 {
		p.PageNum = 1
	}
	if p.PageSize <= 0 || p.PageSize > constants.MaxLimit {
		p.PageSize = constants.DefaultLimit
	}
	return p
}

func (p Params) Offset() int {
	return int((p.PageNum - 1) * p.PageSize)
}

func (p Params) Limit() int {
	return int(p.PageSize)
}

type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	PageNum  int64 `json:"page_num"`
	PageSize int64 `json:"page_size"`
	HasMore  bool  `json:"has_more"`
}

func New[T any](items []T, total int64, p Params) *Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return &Page[T]{
		Items:    items,
		Total:    total,
		PageNum:  p.PageNum,
		PageSize: p.PageSize,
		HasMore:  p.PageNum*p.PageSize < total,
	}
}
