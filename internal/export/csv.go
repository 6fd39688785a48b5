package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sjzar/mailstat/internal/analysis"
	"github.com/sjzar/mailstat/internal/model"
)

const (
	ActiveMonthsFile    = "active_months.csv"
	PersonsFile         = "persons.csv"
	RankingFile         = "ranking.csv"
	MonthlyActivityFile = "monthly_activity.csv"
)

// Writer writes the derived report files for one run into a directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// WriteActiveMonths writes active_months.csv; months must already be in
// ascending stamp order.
func (w *Writer) WriteActiveMonths(months []model.MonthCount) error {
	records := make([][]string, 0, len(months))
	for _, m := range months {
		records = append(records, []string{
			strconv.FormatInt(m.Stamp, 10),
			monthLabel(m.Stamp),
			strconv.FormatInt(m.Count, 10),
		})
	}
	return w.write(ActiveMonthsFile, []string{"stamp", "month", "count"}, records)
}

// WritePersons writes persons.csv; persons must already be in ascending
// raw id order.
func (w *Writer) WritePersons(persons []model.Person) error {
	records := make([][]string, 0, len(persons))
	for _, p := range persons {
		records = append(records, []string{
			strconv.FormatInt(p.RawID, 10),
			strconv.FormatInt(p.UnifiedID, 10),
			p.CanonicalName,
		})
	}
	return w.write(PersonsFile, []string{"raw_id", "unified_id", "canonical_name"}, records)
}

// WriteRanking writes ranking.csv from an already ranked list.
func (w *Writer) WriteRanking(ranking []model.PersonalActivity) error {
	records := make([][]string, 0, len(ranking))
	for i, pa := range ranking {
		records = append(records, []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(pa.ActorID, 10),
			strconv.FormatUint(pa.Activity.Sent, 10),
			strconv.FormatUint(pa.Activity.Recv, 10),
			strconv.FormatUint(pa.Activity.Total(), 10),
		})
	}
	return w.write(RankingFile, []string{"rank", "actor_id", "sent", "recv", "total"}, records)
}

// WriteMonthlyActivity writes monthly_activity.csv: one row per (bucket,
// actor) pair for every actor id in actorIDs, zero-filled for buckets the
// actor has no recorded activity in. Every actor gets a row for every
// bucket, so series can be compared line by line.
func (w *Writer) WriteMonthlyActivity(bucket *analysis.MailBucket, actorIDs []int64) error {
	stamps := bucket.Stamps()
	records := make([][]string, 0, len(stamps)*len(actorIDs))
	for _, id := range actorIDs {
		series := bucket.PersonalActivity(id)
		for i, act := range series {
			records = append(records, []string{
				strconv.FormatInt(stamps[i], 10),
				monthLabel(stamps[i]),
				strconv.FormatInt(id, 10),
				strconv.FormatUint(act.Sent, 10),
				strconv.FormatUint(act.Recv, 10),
			})
		}
	}
	return w.write(MonthlyActivityFile, []string{"stamp", "month", "actor_id", "sent", "recv"}, records)
}

func (w *Writer) write(name string, header []string, records [][]string) error {
	f, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write %s header: %w", name, err)
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", name, err)
	}
	return nil
}

func monthLabel(stamp int64) string {
	return time.UnixMilli(stamp).UTC().Format("2006-01")
}
