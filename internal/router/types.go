package router

// Page is a user-requested navigation target.
type Page string

const (
	PageHome  Page = "home"
	PageAuth  Page = "auth"
	PageAdmin Page = "admin"
)

// ViewMode is what the shell should render.
type ViewMode string

const (
	ModeLoading    ViewMode = "loading"
	ModePublicSite ViewMode = "public"
	ModeAuthScreen ViewMode = "auth"
	ModeAdminPanel ViewMode = "admin"
)
