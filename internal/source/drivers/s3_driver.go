package drivers

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Source reads sheets stored as <prefix><sheet>.csv objects in an
// S3-compatible bucket
type S3Source struct {
	Client *s3.Client
	Bucket string
	Prefix string
}

func NewS3Source(client *s3.Client, bucket, prefix string) *S3Source {
	return &S3Source{
		Client: client,
		Bucket: bucket,
		Prefix: prefix,
	}
}

// Key returns the object key read for sheet.
func (d *S3Source) Key(sheet string) string {
	return d.Prefix + sheet + ".csv"
}

func (d *S3Source) Open(ctx context.Context, sheet string) (io.ReadCloser, error) {
	resp, err := d.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.Bucket),
		Key:    aws.String(d.Key(sheet)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get from S3: %w", err)
	}
	return resp.Body, nil
}

func (d *S3Source) Describe() string {
	return fmt.Sprintf("s3://%s/%s", d.Bucket, d.Prefix)
}
