package webshell

import (
	"context"
	"encoding/json"
	"log"

	"paisleygames_backend/internals/constants"
)

// ReferenceData is the batch of global content every page renders from.
type ReferenceData struct {
	Events   json.RawMessage
	Slides   json.RawMessage
	Tally    json.RawMessage
	Heritage json.RawMessage
}

// DataSource loads the full reference batch in one go.
type DataSource interface {
	LoadAll(ctx context.Context) (*ReferenceData, error)
}

// Router is the page state machine. Transitions into role-guarded views
// fall back (Admin → Home, UserDashboard → Login) instead of failing, and
// every settled transition reloads the reference batch, whether or not
// the new view needs it. Not safe for concurrent use: the shell is a
// single-threaded cooperative UI.
type Router struct {
	source DataSource

	current        View
	role           string
	currentEventID uint
	data           *ReferenceData
	loading        bool
}

func NewRouter(source DataSource) *Router {
	return &Router{source: source, current: ViewHome}
}

func (r *Router) Current() View          { return r.current }
func (r *Router) Role() string           { return r.role }
func (r *Router) CurrentEventID() uint   { return r.currentEventID }
func (r *Router) Data() *ReferenceData   { return r.data }
func (r *Router) Loading() bool          { return r.loading }

// SetRole records the signed-in role ("" when signed out).
func (r *Router) SetRole(role string) { r.role = role }

// Navigate applies the guard for the requested view, settles on the
// resulting view, and reloads reference data. The settled view is
// returned; a load failure keeps the previous (stale) data.
func (r *Router) Navigate(ctx context.Context, to View) View {
	r.current = r.guard(to)
	r.reload(ctx)
	return r.current
}

// NavigateToEvent opens the detail view for one event.
func (r *Router) NavigateToEvent(ctx context.Context, eventID uint) View {
	r.currentEventID = eventID
	return r.Navigate(ctx, ViewEventDetail)
}

func (r *Router) guard(to View) View {
	if !to.Valid() {
		return ViewHome
	}
	switch to {
	case ViewAdmin:
		if r.role != constants.RoleAdmin {
			return ViewHome
		}
	case ViewUserDashboard:
		if r.role != constants.RoleUser {
			return ViewLogin
		}
	}
	return to
}

func (r *Router) reload(ctx context.Context) {
	if r.source == nil {
		return
	}
	r.loading = true
	defer func() { r.loading = false }()

	data, err := r.source.LoadAll(ctx)
	if err != nil {
		log.Println("[WARN] reference data reload failed:", err)
		return
	}
	r.data = data
}
