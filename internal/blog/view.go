package blog

// View is the listing state of one reader: the selected category and how many pages are shown.
type View struct {
	store    *Store
	category string
	page     int
	pageSize int
}

func (s *Store) NewView(pageSize int) *View {
	return &View{
		store:    s,
		category: CategoryAll,
		page:     1,
		pageSize: max(pageSize, 1),
	}
}

// FilterByCategory replaces the current filter and starts over from the first page.
func (v *View) FilterByCategory(category string) {
	v.category = category
	v.page = 1
}

// LoadMore grows the listing by one page.
func (v *View) LoadMore() Page {
	v.page++
	return v.Page()
}

// ShowPages sets how many pages are listed, as when a reader returns with an earlier page count.
func (v *View) ShowPages(page int) {
	v.page = max(page, 1)
}

func (v *View) Page() Page {
	return v.store.List(v.category, v.page, v.pageSize)
}

func (v *View) Category() string {
	return v.category
}

func (v *View) PageCount() int {
	return v.page
}
