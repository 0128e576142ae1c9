package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/printmax/enquiry-desk/internal/app/seeder/sheet"
	"github.com/printmax/enquiry-desk/internal/domain"
	"github.com/printmax/enquiry-desk/internal/query"
	"github.com/printmax/enquiry-desk/internal/service/desk"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"categories", "enquiries"}

// ErrNoCSVPath is returned by Run when no spreadsheet is configured.
var ErrNoCSVPath = errors.New("csv path not configured")

// PhaseResult holds the outcome of a single pipeline phase.
// In a dry run nothing is written and would-be inserts count as skipped.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// RowError is a spreadsheet row that could not be imported.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// Pipeline orchestrates the spreadsheet import.
type Pipeline struct {
	log       *slog.Logger
	desk      EnquiryDesk
	cfg       Config
	results   map[string]PhaseResult
	rowErrors []RowError
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, d EnquiryDesk, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log.With("component", "seeder"),
		desk:    d,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// RowErrors returns the rejected rows in file order.
func (p *Pipeline) RowErrors() []RowError {
	return p.rowErrors
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run parses the configured spreadsheet and executes the phases. If phases
// is non-empty, only the listed phases run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	if p.cfg.CSVPath == "" {
		return ErrNoCSVPath
	}

	records, err := sheet.Parse(p.cfg.CSVPath)
	if err != nil {
		return err
	}
	p.log.Info("sheet parsed",
		slog.String("path", p.cfg.CSVPath),
		slog.Int("rows", len(records)),
		slog.Bool("dry_run", p.cfg.DryRun),
	)

	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "categories":
			result = p.runCategories(ctx, records)
		case "enquiries":
			result = p.runEnquiries(ctx, records)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// runCategories adds the categories used by the sheet that the desk does
// not list yet, in order of first use.
func (p *Pipeline) runCategories(ctx context.Context, records []sheet.Record) PhaseResult {
	known := make(map[string]bool)
	for _, c := range p.desk.Categories() {
		known[c] = true
	}

	var missing []string
	for _, rec := range records {
		name := domain.TitleCase(rec.Category)
		if name == "" || known[name] {
			continue
		}
		known[name] = true
		missing = append(missing, name)
	}

	if p.cfg.SkipCategories || p.cfg.DryRun {
		return PhaseResult{Skipped: len(missing)}
	}

	var result PhaseResult
	for _, name := range missing {
		if _, err := p.desk.AddCategory(ctx, name); err != nil {
			result.Err = fmt.Errorf("add category %q: %w", name, err)
			return result
		}
		result.Inserted++
	}
	return result
}

// runEnquiries creates one enquiry per row. A rejected row is recorded and
// the import goes on; a storage failure stops the phase.
func (p *Pipeline) runEnquiries(ctx context.Context, records []sheet.Record) PhaseResult {
	var result PhaseResult

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			result.Err = err
			return result
		}

		input, err := p.toInput(rec)
		if err == nil {
			err = input.Validate()
		}
		if err != nil {
			p.reject(ctx, rec.Line, err)
			result.Errors++
			continue
		}

		if p.cfg.DryRun {
			result.Skipped++
			continue
		}

		e, err := p.desk.CreateEnquiry(ctx, input)
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				p.reject(ctx, rec.Line, err)
				result.Errors++
				continue
			}
			result.Err = fmt.Errorf("line %d: %w", rec.Line, err)
			return result
		}
		p.log.DebugContext(ctx, "row imported",
			slog.Int("line", rec.Line),
			slog.String("enquiry_id", e.ID),
		)
		result.Inserted++
	}

	return result
}

func (p *Pipeline) reject(ctx context.Context, line int, err error) {
	p.rowErrors = append(p.rowErrors, RowError{Line: line, Err: err})
	p.log.WarnContext(ctx, "row rejected",
		slog.Int("line", line),
		slog.String("error", err.Error()),
	)
}

func (p *Pipeline) toInput(rec sheet.Record) (desk.CreateEnquiryInput, error) {
	input := desk.CreateEnquiryInput{
		Title:        rec.Title,
		Category:     domain.TitleCase(rec.Category),
		CustomerName: rec.CustomerName,
		Phone:        nonEmpty(rec.Phone),
		Channel:      domain.ParseChannel(rec.Channel),
		Notes:        nonEmpty(rec.Notes),
		AssignedTo:   p.resolveAssignee(rec.Assignee),
	}
	if rec.Status != "" {
		input.Status = domain.ParseStatus(rec.Status)
	}
	if rec.Due != "" {
		due, err := query.ParseDue(rec.Due, p.desk.Now().Location())
		if err != nil {
			return desk.CreateEnquiryInput{}, err
		}
		input.DueAt = &due
	}
	return input, nil
}

// resolveAssignee accepts a user id or a user name. An unknown value is
// kept as given and reads back as unassigned.
func (p *Pipeline) resolveAssignee(s string) *string {
	if s == "" {
		return nil
	}
	users := p.desk.Users()
	for _, u := range users {
		if u.ID == s {
			return &u.ID
		}
	}
	for _, u := range users {
		if strings.EqualFold(u.Name, domain.CollapseSpaces(s)) {
			return &u.ID
		}
	}
	return &s
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
