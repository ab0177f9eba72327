package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/DmytroRudikov/Meduzzen-internship/pkg/logger"
	"go.uber.org/zap"
)

// ExportFormat selects the rendering of an audit export.
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
)

// auditColumns fixes the CSV column order; it mirrors the JSON field
// order of AuditEntry.
var auditColumns = []string{
	"company_id",
	"user_id",
	"quiz_id_in_company",
	"question_id_in_quiz",
	"question",
	"user_answer",
	"correct_answer",
}

// AuditReader is the read side of the attempt cache.
type AuditReader interface {
	ForUser(ctx context.Context, userID uint) ([]AuditEntry, error)
	ForCompany(ctx context.Context, companyID uint) ([]AuditEntry, error)
	ForUserInCompany(ctx context.Context, userID, companyID uint) ([]AuditEntry, error)
	ForQuizInCompany(ctx context.Context, companyID, quizIDInCompany uint) ([]AuditEntry, error)
}

// ExportService renders cached audit entries as JSON or CSV. The cache
// is ephemeral, so a read failure degrades to an empty export instead
// of failing the request.
type ExportService struct {
	Audit AuditReader
}

func NewExportService(audit AuditReader) *ExportService {
	return &ExportService{Audit: audit}
}

func (s *ExportService) ExportUser(ctx context.Context, w io.Writer, format ExportFormat, userID uint) error {
	entries, err := s.Audit.ForUser(ctx, userID)
	return s.render(w, format, entries, err)
}

func (s *ExportService) ExportCompany(ctx context.Context, w io.Writer, format ExportFormat, companyID uint) error {
	entries, err := s.Audit.ForCompany(ctx, companyID)
	return s.render(w, format, entries, err)
}

func (s *ExportService) ExportUserInCompany(ctx context.Context, w io.Writer, format ExportFormat, userID, companyID uint) error {
	entries, err := s.Audit.ForUserInCompany(ctx, userID, companyID)
	return s.render(w, format, entries, err)
}

func (s *ExportService) ExportQuizInCompany(ctx context.Context, w io.Writer, format ExportFormat, companyID, quizIDInCompany uint) error {
	entries, err := s.Audit.ForQuizInCompany(ctx, companyID, quizIDInCompany)
	return s.render(w, format, entries, err)
}

func (s *ExportService) render(w io.Writer, format ExportFormat, entries []AuditEntry, readErr error) error {
	if readErr != nil {
		logger.Log.Warn("audit cache read failed, exporting empty set", zap.Error(readErr))
		entries = nil
	}
	if format == FormatCSV {
		return writeCSV(w, entries)
	}
	return writeJSON(w, entries)
}

// writeJSON emits the entries as a 4-space indented array. An empty
// result is rendered as [] rather than null.
func writeJSON(w io.Writer, entries []AuditEntry) error {
	if entries == nil {
		entries = []AuditEntry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(entries)
}

// writeCSV emits a header row followed by one row per entry. With no
// entries the header has zero columns: an empty export is still a
// valid document, not a failure.
func writeCSV(w io.Writer, entries []AuditEntry) error {
	cw := csv.NewWriter(w)
	header := auditColumns
	if len(entries) == 0 {
		header = nil
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, entry := range entries {
		record, err := entryRecord(entry)
		if err != nil {
			return err
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// entryRecord flattens one entry into CSV fields via its JSON form, so
// the two formats can never drift apart.
func entryRecord(entry AuditEntry) ([]string, error) {
	encoded, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return nil, err
	}

	record := make([]string, 0, len(auditColumns))
	for _, column := range auditColumns {
		raw := fields[column]
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			// Numeric field, keep the literal digits.
			text = string(raw)
		}
		record = append(record, text)
	}
	return record, nil
}
