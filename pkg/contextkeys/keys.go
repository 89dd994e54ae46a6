package contextkeys

type contextKey string

const (
	IdentityIDKey contextKey = "IdentityID"
)
