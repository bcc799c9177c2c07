package pkg

import "github.com/google/uuid"

// GenerateGameID - generates a new unique game ID.
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateNewSessionID - generates a new unique sessionID.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// IsValidID reports whether id looks like an ID issued by this package.
func IsValidID(id string) bool {
	return uuid.Validate(id) == nil
}
