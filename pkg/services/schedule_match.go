package services

import "path"

// MatchesWebhookEvent evaluates a schedule's match filter against one
// controller event. Filter keys: entity_id (glob pattern), event_type
// (exact), to_state and from_state (compared against the event's new
// and old state). An absent key is a wildcard; an empty filter matches
// everything.
func MatchesWebhookEvent(filter map[string]interface{}, eventType, entityID, newState, oldState string) bool {
	if pattern, ok := filterString(filter, "entity_id"); ok {
		matched, err := path.Match(pattern, entityID)
		if err != nil || !matched {
			return false
		}
	}
	if want, ok := filterString(filter, "event_type"); ok && want != eventType {
		return false
	}
	if want, ok := filterString(filter, "to_state"); ok && want != newState {
		return false
	}
	if want, ok := filterString(filter, "from_state"); ok && want != oldState {
		return false
	}
	return true
}

func filterString(filter map[string]interface{}, key string) (string, bool) {
	v, ok := filter[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
