package pdf

// CheckPages validates the requested page numbers against the page
// count before anything is dispatched. Pages are numbered from 1.
func CheckPages(count int, pages ...int) error {
	for _, page := range pages {
		if page < 1 || page > count {
			return &PageError{Page: page, Pages: count}
		}
	}

	return nil
}
