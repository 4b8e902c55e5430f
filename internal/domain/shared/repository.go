package shared

// Filter carries common list query options
type Filter struct {
	Page     int
	PageSize int
	Search   string
}

// Normalize clamps filter values into usable ranges
func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 20
	}
}

// Offset returns the row offset for the current page
func (f *Filter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
