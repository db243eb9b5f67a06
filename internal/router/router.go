package router

import (
	"sync"

	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/model"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/internal/session"
	"github.com/VJCTHEGREA8/the-fourth-wall-app/pkg/log"
)

// Route maps a requested page and session state to a view mode. Pure: the
// auto-redirect side effects live on the Navigator, not here.
func Route(page Page, state session.State) ViewMode {
	if state == session.StateUnknown {
		return ModeLoading
	}

	switch page {
	case PageAdmin:
		if state == session.StateAuthenticated {
			return ModeAdminPanel
		}
		return ModeAuthScreen
	case PageAuth:
		return ModeAuthScreen
	default:
		return ModePublicSite
	}
}

// Navigator holds the requested page and layers the session-driven redirects
// on top of Route: authenticating forces the admin page, losing the session
// while on it forces home.
type Navigator struct {
	gate *session.Gate
	l    log.Logger

	mu          sync.Mutex
	page        Page
	unsubscribe func()
}

// NewNavigator creates a Navigator starting on the home page.
func NewNavigator(l log.Logger, gate *session.Gate) *Navigator {
	return &Navigator{
		gate: gate,
		l:    l,
		page: PageHome,
	}
}

// Start attaches the redirect rules to gate transitions.
func (n *Navigator) Start() {
	n.mu.Lock()
	already := n.unsubscribe != nil
	n.mu.Unlock()
	if already {
		return
	}

	unsubscribe := n.gate.Subscribe(n.onSession)
	n.mu.Lock()
	n.unsubscribe = unsubscribe
	n.mu.Unlock()
}

// Stop detaches from the gate. Idempotent.
func (n *Navigator) Stop() {
	n.mu.Lock()
	unsubscribe := n.unsubscribe
	n.unsubscribe = nil
	n.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Goto records a navigation request.
func (n *Navigator) Goto(page Page) {
	n.mu.Lock()
	n.page = page
	n.mu.Unlock()
}

// Current returns the requested page.
func (n *Navigator) Current() Page {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.page
}

// Mode resolves the view mode for the current page and session state.
func (n *Navigator) Mode() ViewMode {
	state, _ := n.gate.State()
	return Route(n.Current(), state)
}

func (n *Navigator) onSession(state session.State, _ *model.Identity) {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch state {
	case session.StateAuthenticated:
		n.page = PageAdmin
	case session.StateAnonymous:
		if n.page == PageAdmin {
			n.page = PageHome
		}
	}
}
