package report

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Kind string

const (
	KindMissingImage        Kind = "missing-image"
	KindMissingDetailPage   Kind = "missing-detail-page"
	KindMissingCategoryPage Kind = "missing-category-page"
	KindDuplicateSlug       Kind = "duplicate-slug"
	KindUnknownCategory     Kind = "unknown-category"
	KindSkipped             Kind = "skipped"
)

// Warning is a recoverable problem met during a run.
type Warning struct {
	Kind    Kind   `json:"kind"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s %s: %s", w.Kind, w.Subject, w.Message)
}

// Report collects what one run did. It is owned by a single run and not safe for concurrent use.
// Unchanged counts writes whose payload matched the ledger digest of an earlier run.
type Report struct {
	Warnings  []Warning `json:"warnings"`
	Uploads   int       `json:"uploads"`
	Writes    int       `json:"writes"`
	Unchanged int       `json:"unchanged"`
}

func New() *Report {
	return &Report{Warnings: make([]Warning, 0)}
}

// Warn records a warning and logs it.
func (r *Report) Warn(kind Kind, subject, format string, args ...any) {
	w := Warning{Kind: kind, Subject: subject, Message: fmt.Sprintf(format, args...)}
	r.Warnings = append(r.Warnings, w)
	log.Warnf("⚠️ %s", w)
}

// WarningsOf returns the warnings of one kind, in the order they were recorded.
func (r *Report) WarningsOf(kind Kind) []Warning {
	var out []Warning
	for _, w := range r.Warnings {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}

func (r *Report) Summary() string {
	return fmt.Sprintf("%d written, %d unchanged, %d uploads, %d warnings", r.Writes, r.Unchanged, r.Uploads, len(r.Warnings))
}
