package analysis

import (
	"sort"

	"github.com/sjzar/mailstat/internal/model"
)

// MailBucket accumulates per-bucket, per-person activity while replaying a
// mail event stream. Events may arrive in any order; the aggregate is a
// commutative sum, so the final state does not depend on replay order.
//
// A MailBucket is not safe for concurrent use. To shard ingestion, give
// each worker a private instance and combine the results with Merge.
type MailBucket struct {
	buckets map[int64]map[int64]model.Activity
}

func NewMailBucket() *MailBucket {
	return &MailBucket{buckets: make(map[int64]map[int64]model.Activity)}
}

// RecordEvent credits one sent mail to the sender and one received mail to
// the recipient at bucketStamp. Each side is updated from its own prior
// value; a self-addressed mail advances both counters of the same person.
func (b *MailBucket) RecordEvent(bucketStamp, senderID, recipientID int64) {
	bucket := b.buckets[bucketStamp]
	if bucket == nil {
		bucket = make(map[int64]model.Activity)
		b.buckets[bucketStamp] = bucket
	}
	bucket[senderID] = bucket[senderID].IncSent()
	bucket[recipientID] = bucket[recipientID].IncRecv()
}

// TimeRange returns the smallest and largest bucket stamps recorded so
// far. ok is false when nothing has been recorded; min and max are
// meaningless in that case.
func (b *MailBucket) TimeRange() (min, max int64, ok bool) {
	for stamp := range b.buckets {
		if !ok || stamp < min {
			min = stamp
		}
		if !ok || stamp > max {
			max = stamp
		}
		ok = true
	}
	return min, max, ok
}

// TotalPeriodActivity sums the activity of every person recorded at stamp.
// An absent bucket sums to the zero Activity.
func (b *MailBucket) TotalPeriodActivity(stamp int64) model.Activity {
	var total model.Activity
	for _, act := range b.buckets[stamp] {
		total = total.Add(act)
	}
	return total
}

// TotalPersonalActivity sums each person's activity across all buckets and
// returns the entries ranked by descending total, ties broken by ascending
// actor id.
func (b *MailBucket) TotalPersonalActivity() []model.PersonalActivity {
	totals := make(map[int64]model.Activity)
	for _, bucket := range b.buckets {
		for id, act := range bucket {
			totals[id] = totals[id].Add(act)
		}
	}

	out := make([]model.PersonalActivity, 0, len(totals))
	for id, act := range totals {
		out = append(out, model.PersonalActivity{ActorID: id, Activity: act})
	}
	sort.Slice(out, func(i, j int) bool { return model.MoreActive(out[i], out[j]) })
	return out
}

// Stamps returns every distinct bucket stamp in ascending order.
func (b *MailBucket) Stamps() []int64 {
	stamps := make([]int64, 0, len(b.buckets))
	for stamp := range b.buckets {
		stamps = append(stamps, stamp)
	}
	sort.Slice(stamps, func(i, j int) bool { return stamps[i] < stamps[j] })
	return stamps
}

// PersonalActivity returns actorID's activity series with one entry per
// distinct bucket stamp in the whole aggregator, ascending by stamp.
// Buckets the person never appears in yield a zero Activity, so any two
// persons' series line up index for index.
func (b *MailBucket) PersonalActivity(actorID int64) []model.Activity {
	stamps := b.Stamps()
	series := make([]model.Activity, len(stamps))
	for i, stamp := range stamps {
		series[i] = b.buckets[stamp][actorID]
	}
	return series
}

// Merge folds other into b with a bucket-wise, person-wise addition.
// Because Activity addition is commutative and associative, merging
// per-shard aggregates in any order yields the same result as a single
// sequential pass.
func (b *MailBucket) Merge(other *MailBucket) {
	if other == nil {
		return
	}
	for stamp, bucket := range other.buckets {
		dst := b.buckets[stamp]
		if dst == nil {
			dst = make(map[int64]model.Activity, len(bucket))
			b.buckets[stamp] = dst
		}
		for id, act := range bucket {
			dst[id] = dst[id].Add(act)
		}
	}
}
