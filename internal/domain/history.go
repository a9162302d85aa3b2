package domain

// DefaultHistoryLimit caps the room history log.
const DefaultHistoryLimit = 40

// PushHistory prepends an entry to a most-recent-first log, trimming to limit.
// A limit of zero or less falls back to DefaultHistoryLimit.
func PushHistory(log []string, entry string, limit int) []string {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	out := make([]string, 0, len(log)+1)
	out = append(out, entry)
	out = append(out, log...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
