package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rpupo63/job-tracker-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t,
		"Position,Company Name,Platform,Job Link,Contract Type,Work Model,Location,Salary Expectation,Status,CV Version,Notes,Date Applied,Last Updated,Reminder Sent\n",
		buf.String())
}

func TestWriteCSVRow(t *testing.T) {
	applied := time.Date(2025, 3, 4, 9, 30, 0, 0, time.FixedZone("CET", 3600))
	updated := time.Date(2025, 3, 10, 12, 0, 0, 500_000_000, time.UTC)
	app := &models.Application{
		Position:       "Backend Engineer",
		CompanyName:    "Acme, Inc.",
		Platform:       strPtr("LinkedIn"),
		Status:         models.StatusInterviewHR,
		Notes:          strPtr(`He said "yes", great!`),
		DateApplied:    applied,
		LastUpdated:    updated,
		IsReminderSent: true,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []*models.Application{app}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		`Backend Engineer,"Acme, Inc.",LinkedIn,,,,,,INTERVIEW_HR,,"He said ""yes"", great!",2025-03-04T08:30:00.000Z,2025-03-10T12:00:00.500Z,Yes`,
		lines[1])
}

func TestWriteCSVQuotesOnlyCommaQuoteNewline(t *testing.T) {
	app := &models.Application{
		Position:    " remote",
		CompanyName: "Tab\tCo",
		Location:    strPtr("line one\nline two"),
		Notes:       strPtr(`\.`),
		Status:      models.StatusApplied,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []*models.Application{app}))

	body := strings.TrimPrefix(buf.String(), strings.Join(Header, ",")+"\n")
	assert.Equal(t,
		" remote,Tab\tCo,,,,,\"line one\nline two\",,APPLIED,,\\.,,,No\n",
		body)
}

func TestRowReminderNo(t *testing.T) {
	row := Row(&models.Application{Position: "p", CompanyName: "c", Status: models.StatusApplied})
	require.Len(t, row, len(Header))
	assert.Equal(t, "No", row[13])
	assert.Equal(t, "", row[11])
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	b, _ := io.ReadAll(params.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, f.err
}

func TestArchiverUploadsUnderUserPrefix(t *testing.T) {
	putter := &fakePutter{}
	a := NewArchiver(putter, "exports-bucket")
	a.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	userID := uuid.MustParse("6f1c2b9e-8d1e-4c61-9f0a-3f1b2a4c5d6e")

	ok := a.Archive(context.Background(), userID, []byte("a,b\n"))

	require.True(t, ok)
	assert.Equal(t, "exports-bucket", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "exports/6f1c2b9e-8d1e-4c61-9f0a-3f1b2a4c5d6e/20250102T030405.000Z.csv", aws.ToString(putter.input.Key))
	assert.Equal(t, "a,b\n", putter.body)
}

func TestArchiverSwallowsFailures(t *testing.T) {
	a := NewArchiver(&fakePutter{err: errors.New("access denied")}, "b")
	assert.False(t, a.Archive(context.Background(), uuid.New(), []byte("x")))

	var disabled *Archiver
	assert.False(t, disabled.Archive(context.Background(), uuid.New(), []byte("x")))
}
