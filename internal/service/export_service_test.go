package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuditReader struct {
	entries []AuditEntry
	err     error
}

func (f *fakeAuditReader) ForUser(ctx context.Context, userID uint) ([]AuditEntry, error) {
	return f.entries, f.err
}

func (f *fakeAuditReader) ForCompany(ctx context.Context, companyID uint) ([]AuditEntry, error) {
	return f.entries, f.err
}

func (f *fakeAuditReader) ForUserInCompany(ctx context.Context, userID, companyID uint) ([]AuditEntry, error) {
	return f.entries, f.err
}

func (f *fakeAuditReader) ForQuizInCompany(ctx context.Context, companyID, quizIDInCompany uint) ([]AuditEntry, error) {
	return f.entries, f.err
}

func TestExportJSON(t *testing.T) {
	svc := NewExportService(&fakeAuditReader{entries: sampleEntries(11, 4, 1)})

	var buf bytes.Buffer
	require.NoError(t, svc.ExportUser(context.Background(), &buf, FormatJSON, 11))

	var decoded []AuditEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, uint(4), decoded[0].CompanyID)
	assert.Equal(t, "4", decoded[0].UserAnswer)

	// Indented output, not a single line.
	assert.Contains(t, buf.String(), "\n    ")
}

func TestExportJSONEmpty(t *testing.T) {
	svc := NewExportService(&fakeAuditReader{})

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCompany(context.Background(), &buf, FormatJSON, 4))

	// An empty export is an empty array, never null.
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestExportCSV(t *testing.T) {
	svc := NewExportService(&fakeAuditReader{entries: sampleEntries(11, 4, 1)})

	var buf bytes.Buffer
	require.NoError(t, svc.ExportQuizInCompany(context.Background(), &buf, FormatCSV, 4, 1))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{
		"company_id", "user_id", "quiz_id_in_company", "question_id_in_quiz",
		"question", "user_answer", "correct_answer",
	}, records[0])
	assert.Equal(t, []string{"4", "11", "1", "1", "2+2?", "4", "4"}, records[1])
	assert.Equal(t, []string{"4", "11", "1", "2", "3+3?", "5", "6"}, records[2])
}

func TestExportCSVEmpty(t *testing.T) {
	svc := NewExportService(&fakeAuditReader{})

	var buf bytes.Buffer
	require.NoError(t, svc.ExportUserInCompany(context.Background(), &buf, FormatCSV, 11, 4))

	// A zero-column header renders as a blank line, which the reader
	// treats as no records at all.
	out := buf.String()
	assert.Equal(t, "\n", out)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestExportDegradesOnCacheError(t *testing.T) {
	svc := NewExportService(&fakeAuditReader{err: errors.New("redis down")})

	var buf bytes.Buffer
	require.NoError(t, svc.ExportUser(context.Background(), &buf, FormatJSON, 11))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))

	buf.Reset()
	require.NoError(t, svc.ExportUser(context.Background(), &buf, FormatCSV, 11))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}
