package models

// Like target scopes
const (
	ScopeProfile = "profile"
	ScopeCard    = "card"
)

// UserKey builds the partition key for a user's likes
func UserKey(handle string) string {
	return "USER#" + handle
}

// ProfileTargetKey builds the target key for a direct profile like
func ProfileTargetKey(handle string) string {
	return "PROFILE#" + handle
}

// CardTargetKey builds the target key for an event-card like
func CardTargetKey(cardID string) string {
	return "CARD#" + cardID
}

// SortHandles orders two user handles deterministically so that both
// directions of a pair map onto the same key.
func SortHandles(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// PairKey builds the canonical pair key; PairKey(a, b) == PairKey(b, a).
func PairKey(a, b string) string {
	first, second := SortHandles(a, b)
	return "PAIR#" + first + "#" + second
}

// ScopeKey builds the match sort key for the given scope. An empty cardID
// means a direct profile-to-profile match.
func ScopeKey(cardID string) string {
	if cardID == "" {
		return "PROFILE"
	}
	return CardTargetKey(cardID)
}
