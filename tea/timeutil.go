package tea

import "time"

// millisPerDay is the tick resolution of JavaScale (§3): 86,400,000
// milliseconds per day.
const millisPerDay = 86_400_000

// TicksFromTime converts t to the millisecond-resolution tick count that a
// JavaScale-encoded time field stores: milliseconds elapsed since the Unix
// epoch (1970-01-01T00:00:00Z), matching the reference's DateTime class.
func TicksFromTime(t time.Time) int64 {
	return t.UnixMilli()
}

// TimeFromTicks converts a JavaScale tick count, as read back from a time
// field, to a UTC time.Time.
func TimeFromTicks(ticks int64) time.Time {
	return time.UnixMilli(ticks).UTC()
}

// TicksPerDay is JavaScale's tick resolution, exported for callers doing
// their own tick arithmetic (e.g. truncating a timestamp to midnight).
const TicksPerDay = millisPerDay
