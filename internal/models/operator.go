package models

// Operator is the identity signed in through OIDC. Only held in the session.
type Operator struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// DisplayName returns the best available human-readable name.
func (o *Operator) DisplayName() string {
	if o == nil {
		return ""
	}
	if o.Name != "" {
		return o.Name
	}
	if o.Email != "" {
		return o.Email
	}
	return o.Sub
}
