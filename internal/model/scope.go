package model

// Scope identifies the caller for the duration of one request or evaluation
// cycle. There is no authentication layer: the identifier is supplied by the
// caller and everything downstream (campaigns, alerts, tracker state) is
// partitioned by it.
type Scope struct {
	UserID string `json:"user_id"`
}

// IsValid reports whether the scope carries a usable identifier.
func (s Scope) IsValid() bool {
	return s.UserID != ""
}
