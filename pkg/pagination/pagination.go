package pagination

// Params selects one page of a larger result set.
// A PageSize of 0 means no paging: the whole set in one response.
type Params struct {
	Page     int
	PageSize int
}

// CalculateOffsetLimit converts the params into sql offset and limit values.
// A zero limit is understood by the storage layer as no limit.
func (p Params) CalculateOffsetLimit() (offset, limit int) {
	if p.PageSize <= 0 {
		return 0, 0
	}

	page := p.Page
	if page < 1 {
		page = 1
	}

	return (page - 1) * p.PageSize, p.PageSize
}

// BuildMeta describes the full set the returned page was cut from
func (p Params) BuildMeta(totalItems int) Meta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (totalItems + p.PageSize - 1) / p.PageSize
	}

	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}
