package globals

type contextKey string

const (
	UserIDKey   contextKey = "userId"
	UsernameKey contextKey = "username"
	TokenIDKey  contextKey = "tokenId"
)
