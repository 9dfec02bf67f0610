package entity

// Session mirrors the User at login time. It is a snapshot, not a live
// reference: later profile edits do not refresh it.
type Session struct {
	IsLoggedIn  bool `json:"isLoggedIn"`
	CurrentUser User `json:"currentUser"`
}
