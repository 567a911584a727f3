package session

// User is the signed-in shopper shown in the header.
type User struct {
	Email       string `json:"email"`
	DisplayName string `json:"name"`
}

// State is the storefront's session flag. It is a presentation flag,
// not a verified credential: there is no token and no expiry.
type State struct {
	IsAuthenticated bool  `json:"is_authenticated"`
	CurrentUser     *User `json:"current_user,omitempty"`
}

func (s State) clone() State {
	if s.CurrentUser == nil {
		return State{IsAuthenticated: s.IsAuthenticated}
	}
	user := *s.CurrentUser
	return State{IsAuthenticated: s.IsAuthenticated, CurrentUser: &user}
}
