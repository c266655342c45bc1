package auth

import "github.com/SohamMhatre7788/insurai/internal/domain"

// RouteLogin is where unauthenticated navigation lands. The originally
// requested route is discarded, not preserved as a return-to target.
const RouteLogin = "/login"

// Decision is the outcome kind of an authorization check.
type Decision int

const (
	// DecisionLoading means the session store has not finished initializing;
	// render a neutral waiting state and re-evaluate, do not redirect.
	DecisionLoading Decision = iota
	// DecisionAllow renders the requested screen.
	DecisionAllow
	// DecisionRedirect navigates to Verdict.RedirectTo instead.
	DecisionRedirect
)

// Verdict is one navigation attempt's authorization outcome.
type Verdict struct {
	Decision   Decision
	RedirectTo string
}

// Authorize decides whether a route requiring the given role may render for
// the session. It is a pure function with no side effects besides the
// returned redirect decision and must be re-evaluated on every navigation.
// An empty required role admits any authenticated session.
//
// A valid session with the wrong role redirects to that user's own home
// route, never to the login screen.
func Authorize(sess domain.Session, initialized bool, required domain.Role) Verdict {
	if !initialized {
		return Verdict{Decision: DecisionLoading}
	}
	if !sess.IsAuthenticated() {
		return Verdict{Decision: DecisionRedirect, RedirectTo: RouteLogin}
	}
	if required != "" && sess.User.Role != required {
		if sess.User.Role.Valid() {
			return Verdict{Decision: DecisionRedirect, RedirectTo: sess.User.Role.HomeRoute()}
		}
		return Verdict{Decision: DecisionRedirect, RedirectTo: RouteLogin}
	}
	return Verdict{Decision: DecisionAllow}
}
