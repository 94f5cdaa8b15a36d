package monitor

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"stockwatch/internal/config"
	"stockwatch/internal/notify"
	"stockwatch/internal/ratelimit"
	"stockwatch/internal/scrape"
	"stockwatch/internal/state"
)

type Options struct {
	Products  []config.Product
	StatePath string
	Notifiers []notify.Notifier
	Checker   Checker
	// CheckDelay spaces product checks within a run; zero disables pacing.
	CheckDelay time.Duration
	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

type Monitor struct {
	opts Options
}

func New(opts Options) *Monitor {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Monitor{opts: opts}
}

// Run performs one scrape-diff-notify cycle over every tracked product
// and persists the updated state. A notification fires iff the stored
// status and the newly observed status are both known and differ; a
// failed check keeps the stored status so the next scheduled run retries
// without spurious flip alerts.
func (m *Monitor) Run(ctx context.Context) (Summary, error) {
	records, err := state.Load(m.opts.StatePath)
	if err != nil {
		return Summary{}, err
	}

	pacer := ratelimit.NewPacer(m.opts.CheckDelay)
	var summary Summary

	for _, product := range m.opts.Products {
		pacer.Wait()

		log.Info().Str("product", product.Name).Msg("checking")
		result := m.opts.Checker.Check(product)
		summary.Checked++

		now := m.opts.Now()
		record, seen := records[product.Name]
		record.LastChecked = now

		switch {
		case result.Err != nil:
			// Status unknown this run, keep whatever we knew before.
			if !seen {
				record.Status = scrape.Unknown
				record.LastChanged = now
			}
			summary.Failed++
			log.Error().Err(result.Err).Str("product", product.Name).Msg("check failed")

		case !seen:
			// First observation: record without notifying.
			record.Status = result.Status
			record.Price = result.Price
			record.LastChanged = now
			log.Info().
				Str("product", product.Name).
				Str("status", string(result.Status)).
				Msg("tracking new product")

		case record.Status != result.Status:
			if record.Status.Known() {
				event := notify.Event{
					Product: product.Name,
					URL:     product.URL,
					Old:     record.Status,
					New:     result.Status,
					Price:   result.Price,
					At:      now,
				}
				summary.Changed++
				summary.Notified += m.send(ctx, event)
			}
			record.Status = result.Status
			record.Price = result.Price
			record.LastChanged = now
			log.Info().
				Str("product", product.Name).
				Str("status", string(result.Status)).
				Dur("latency", result.Latency).
				Msg("status changed")

		default:
			record.Price = result.Price
			log.Debug().
				Str("product", product.Name).
				Str("status", string(result.Status)).
				Dur("latency", result.Latency).
				Msg("no change")
		}

		records[product.Name] = record
	}

	if err := state.Save(m.opts.StatePath, records); err != nil {
		return summary, err
	}

	if summary.Changed == 0 {
		log.Info().Int("checked", summary.Checked).Msg("no status changes detected")
	} else {
		log.Info().
			Int("checked", summary.Checked).
			Int("changed", summary.Changed).
			Int("notified", summary.Notified).
			Msg("run complete")
	}

	if summary.Failed == summary.Checked && summary.Checked > 0 {
		return summary, errors.New("every product check failed")
	}
	return summary, nil
}

// send fans the event out to every configured channel and reports how
// many deliveries succeeded. A channel failure is logged, not fatal: the
// other channel may still get through.
func (m *Monitor) send(ctx context.Context, event notify.Event) int {
	sent := 0
	for _, notifier := range m.opts.Notifiers {
		if err := notifier.Notify(ctx, event); err != nil {
			log.Error().Err(err).Str("product", event.Product).Msg("notification failed")
			continue
		}
		sent++
	}
	return sent
}
