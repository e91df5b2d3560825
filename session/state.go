package session

// State is the whole session: who is acting, with what token, on whose behalf.
type State struct {
	User          *Identity    `json:"user"`
	Token         string       `json:"token"`
	Authenticated bool         `json:"isAuthenticated"`
	Impersonation *OperatorRef `json:"impersonation,omitempty"`
}

// IsAuthenticated derives the flag from its parts: a user without a token is not signed in.
func (s State) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

// Clone returns a deep copy.
func (s State) Clone() State {
	if s.User != nil {
		u := s.User.Clone()
		s.User = &u
	}
	if s.Impersonation != nil {
		o := *s.Impersonation
		s.Impersonation = &o
	}
	return s
}

// normalize restores the invariants after a load from storage.
func (s State) normalize() State {
	s.Authenticated = s.IsAuthenticated()
	if s.User == nil {
		s.Impersonation = nil
	}
	return s
}

// The transitions below are pure; Store applies them under its lock and persists the result.

func loginState(user Identity, token string) State {
	u := user.Clone()
	s := State{User: &u, Token: token}
	s.Authenticated = s.IsAuthenticated()
	return s
}

func withToken(s State, token string) State {
	s = s.Clone()
	s.Token = token
	s.Authenticated = s.IsAuthenticated()
	return s
}

func updatedUser(s State, patch IdentityPatch) (State, bool) {
	if s.User == nil {
		return s, false
	}
	s = s.Clone()
	patch.applyTo(s.User)
	return s, true
}

// impersonating keeps an existing link, so switching members mid-impersonation still
// returns to the original operator.
func impersonating(s State, target, operator Identity) State {
	s = s.Clone()
	t := target.Clone()
	s.User = &t
	if s.Impersonation == nil {
		s.Impersonation = operatorRefOf(operator)
	}
	s.Authenticated = s.IsAuthenticated()
	return s
}

func stoppedImpersonating(s State) (State, bool) {
	if s.Impersonation == nil {
		return s, false
	}
	s = s.Clone()
	restored := s.Impersonation.restoredOperator()
	s.User = &restored
	s.Impersonation = nil
	s.Authenticated = s.IsAuthenticated()
	return s, true
}
