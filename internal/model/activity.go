package model

// Activity is the pair of sent/received mail counts attributed to one
// person within a single time bucket, or summed across buckets. The zero
// value is the empty activity. Values are never mutated in place; every
// update returns a fresh copy.
type Activity struct {
	Sent uint64 `json:"sent"`
	Recv uint64 `json:"recv"`
}

func (a Activity) Total() uint64 { return a.Sent + a.Recv }

// Add returns the pairwise sum of a and b. Addition is commutative and
// associative, so merged partial aggregates do not depend on merge order.
func (a Activity) Add(b Activity) Activity {
	return Activity{Sent: a.Sent + b.Sent, Recv: a.Recv + b.Recv}
}

func (a Activity) IncSent() Activity {
	a.Sent++
	return a
}

func (a Activity) IncRecv() Activity {
	a.Recv++
	return a
}

// PersonalActivity pairs a person with accumulated activity. Only used for
// ranked views, never as storage.
type PersonalActivity struct {
	ActorID  int64    `json:"actor_id"`
	Activity Activity `json:"activity"`
}

// MoreActive reports whether a ranks before b: larger total first, ties
// broken by ascending actor id so every entry has a unique position.
func MoreActive(a, b PersonalActivity) bool {
	if a.Activity.Total() != b.Activity.Total() {
		return a.Activity.Total() > b.Activity.Total()
	}
	return a.ActorID < b.ActorID
}
