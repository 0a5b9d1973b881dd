package viewmodel

// User represents the signed-in user exposed to templates.
type User struct {
	Username  string
	Role      string
	RoleLabel string
}

// NavItem is one navigation entry offered to the current role.
type NavItem struct {
	Action string
	Label  string
	Path   string
	Active bool
}

// Layout captures shared chrome metadata (titles, navigation, user).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	User            *User
	Nav             []NavItem
}

// Flash is a one-shot message carried across a redirect.
type Flash struct {
	Kind    string
	Message string
}
