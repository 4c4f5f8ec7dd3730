package companion

import "time"

// sameDay reports whether two instants fall on the same calendar date.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// previousSession returns the most recent session strictly before today's
// calendar date, or nil if the user has never talked on an earlier day.
func previousSession(p *UserProfile, now time.Time) *Session {
	for i := len(p.Sessions) - 1; i >= 0; i-- {
		if !sameDay(p.Sessions[i].Date, now) {
			return &p.Sessions[i]
		}
	}
	return nil
}

// RecordExchange books one completed request/response exchange: it opens a new
// session when today's date differs from the last recorded one, then bumps the
// current session's count by 2 (one user turn, one companion turn). Pure
// bookkeeping; it never gates or alters reply content.
func RecordExchange(p *UserProfile, now time.Time) {
	if len(p.Sessions) == 0 || !sameDay(p.Sessions[len(p.Sessions)-1].Date, now) {
		p.Sessions = append(p.Sessions, Session{Date: now})
	}
	p.Sessions[len(p.Sessions)-1].MessageCount += 2
}
