package mailstat

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sjzar/mailstat/internal/analysis"
	"github.com/sjzar/mailstat/internal/export"
	"github.com/sjzar/mailstat/internal/maildb"
	"github.com/sjzar/mailstat/internal/mailstat/conf"
	"github.com/sjzar/mailstat/internal/model"
	"github.com/sjzar/mailstat/pkg/util"
)

// App wires the corpus database, the analysis passes, and the CSV export
// together for one run.
type App struct {
	conf *conf.Config
	db   *maildb.DB
}

func New(cfg *conf.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	db, err := maildb.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return &App{conf: cfg, db: db}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// ResolvePersons loads the raw person table and resolves it to the
// deduplicated identity table, ascending by raw id.
func (a *App) ResolvePersons(ctx context.Context) ([]model.Person, error) {
	rows, skipped, err := a.db.Actors(ctx)
	if err != nil {
		return nil, err
	}
	persons := analysis.ResolveAll(rows)
	log.Info().
		Int("rows", len(rows)).
		Int("skipped", skipped).
		Int("persons", len(persons)).
		Msg("person table resolved")
	return persons, nil
}

// ActiveMonths replays the event stream and returns the calendar months
// whose event count exceeds the configured threshold.
func (a *App) ActiveMonths(ctx context.Context) ([]model.MonthCount, error) {
	var stamps []int64
	skipped, err := a.db.ForEachEvent(ctx, func(ev model.MailEvent) error {
		stamps = append(stamps, ev.Timestamp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	months := analysis.ActiveMonths(stamps, a.conf.Threshold)
	log.Info().
		Int("events", len(stamps)).
		Int("skipped", skipped).
		Int("months", len(months)).
		Int64("threshold", a.conf.Threshold).
		Msg("active months computed")
	return months, nil
}

// Report runs the full pipeline: resolve persons, replay events into the
// month filter and the activity aggregator, write the CSV report files.
func (a *App) Report(ctx context.Context) error {
	runID := uuid.NewString()
	logger := log.With().Str("run_id", runID).Logger()
	start := time.Now()

	persons, err := a.ResolvePersons(ctx)
	if err != nil {
		return err
	}

	bucket := analysis.NewMailBucket()
	var stamps []int64
	skipped, err := a.db.ForEachEvent(ctx, func(ev model.MailEvent) error {
		stamps = append(stamps, ev.Timestamp)
		bucket.RecordEvent(analysis.MonthStamp(ev.Timestamp), ev.SenderID, ev.RecipientID)
		return nil
	})
	if err != nil {
		return err
	}
	months := analysis.ActiveMonths(stamps, a.conf.Threshold)
	ranking := bucket.TotalPersonalActivity()

	writer, err := export.NewWriter(a.conf.OutputDir)
	if err != nil {
		return err
	}
	if err := writer.WriteActiveMonths(months); err != nil {
		return err
	}
	if err := writer.WritePersons(persons); err != nil {
		return err
	}
	if err := writer.WriteRanking(ranking); err != nil {
		return err
	}
	if err := writer.WriteMonthlyActivity(bucket, a.seriesActors(ranking)); err != nil {
		return err
	}

	minStamp, maxStamp, ok := bucket.TimeRange()
	evt := logger.Info().
		Int("events", len(stamps)).
		Int("skipped", skipped).
		Int("persons", len(persons)).
		Int("months", len(months)).
		Int("actors", len(ranking)).
		Dur("elapsed", time.Since(start))
	if ok {
		evt = evt.
			Str("first_bucket", time.UnixMilli(minStamp).UTC().Format("2006-01")).
			Str("last_bucket", time.UnixMilli(maxStamp).UTC().Format("2006-01"))
	}
	evt.Msg("report complete")
	return nil
}

// seriesActors picks the actor ids whose monthly series go into
// monthly_activity.csv: the --actors selection when given, otherwise every
// ranked actor.
func (a *App) seriesActors(ranking []model.PersonalActivity) []int64 {
	if ids := util.Int64List(a.conf.Actors, ","); len(ids) > 0 {
		return ids
	}
	ids := make([]int64, 0, len(ranking))
	for _, pa := range ranking {
		ids = append(ids, pa.ActorID)
	}
	return ids
}
