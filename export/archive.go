package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ObjectPutter is the slice of the S3 client the archiver needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Archiver copies rendered exports to a bucket. A nil *Archiver archives nothing.
type Archiver struct {
	client ObjectPutter
	bucket string
	logger zerolog.Logger
	now    func() time.Time
}

func NewArchiver(client ObjectPutter, bucket string) *Archiver {
	return &Archiver{
		client: client,
		bucket: bucket,
		logger: log.With().Str("component", "exportArchiver").Str("bucket", bucket).Logger(),
		now:    time.Now,
	}
}

// NewS3Archiver builds an archiver backed by an S3 client from the default
// AWS credential chain. An empty bucket disables archiving.
func NewS3Archiver(ctx context.Context, region, bucket string) (*Archiver, error) {
	if bucket == "" {
		return nil, nil
	}
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewArchiver(s3.NewFromConfig(cfg), bucket), nil
}

// Key is the object key for an export taken at t.
func Key(userID uuid.UUID, t time.Time) string {
	return fmt.Sprintf("exports/%s/%s.csv", userID, t.UTC().Format("20060102T150405.000Z"))
}

// Archive uploads data and reports whether it was stored. Failures are logged
// and swallowed so the download itself never fails on archival.
func (a *Archiver) Archive(ctx context.Context, userID uuid.UUID, data []byte) bool {
	if a == nil || a.client == nil {
		return false
	}
	key := Key(userID, a.now())
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		a.logger.Error().Err(err).Str("key", key).Msg("Failed to archive export")
		return false
	}
	a.logger.Debug().Str("key", key).Msg("Archived export")
	return true
}
