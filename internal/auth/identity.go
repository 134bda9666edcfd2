package auth

// Claim is the minimal verified identity carried for the life of a session
// token. Role is always lowercased before the claim is built, so downstream
// comparisons are case-insensitive by construction.
type Claim struct {
	SubjectID string
	Role      string
}

// Identity is the full assertion produced by a successful authentication.
type Identity struct {
	SubjectID string
	Email     string
	Name      string
	Role      string
}

// Claim reduces the identity to what a session token carries.
func (id Identity) Claim() Claim {
	return Claim{SubjectID: id.SubjectID, Role: id.Role}
}
