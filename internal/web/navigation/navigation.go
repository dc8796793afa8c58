// Package navigation builds the breadcrumb trail and active menu state of a page.
package navigation

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	PageTitle     string
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0, 3),
	}
}

// AddBreadcrumb appends a breadcrumb. Only one breadcrumb is active: adding an
// active one deactivates the previous.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	if active {
		for i := range c.Breadcrumbs {
			c.Breadcrumbs[i].Active = false
		}
	}

	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// Back returns the closest breadcrumb before the active one that links
// somewhere, or nil.
func (c *Context) Back() *BreadcrumbItem {
	end := len(c.Breadcrumbs)
	for i, b := range c.Breadcrumbs {
		if b.Active {
			end = i
			break
		}
	}

	for i := end - 1; i >= 0; i-- {
		if u := c.Breadcrumbs[i].URL; u != "" && u != "#" {
			b := c.Breadcrumbs[i]
			return &b
		}
	}

	return nil
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
