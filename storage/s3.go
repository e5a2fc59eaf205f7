package storage

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dreamcraft-eng/dreamcraft-backend/errs"
)

// S3Store uploads files to an S3 bucket, for deployments where the API
// instances have no shared disk.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3Store builds an S3-backed store using the default AWS credential
// chain. baseURL is the public prefix objects are served from, typically a
// CDN or the bucket website endpoint.
func NewS3Store(ctx context.Context, bucket, baseURL string) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errs.NewStorageError("load AWS configuration", err)
	}
	return &S3Store{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *S3Store) Save(ctx context.Context, r io.Reader, ext string) (string, string, error) {
	filename := uniqueFilename(ext)
	key := "images/" + filename

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", "", errs.NewStorageError("upload file to S3", err)
	}

	return filename, s.baseURL + "/" + key, nil
}
