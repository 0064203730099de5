package wolter

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// UploadTimeout bounds a single artifact upload.
const UploadTimeout = 60 * time.Second

// Uploader pushes run artifacts to an S3-compatible bucket.
type Uploader struct {
	client *s3.S3
	bucket string
	prefix string
}

// NewUploader opens a session with static credentials and path-style addressing.
func NewUploader(c S3Cfg) (*Uploader, error) {
	if c.Bucket == "" {
		return nil, errors.New("s3: bucket is required")
	}
	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(c.AccessKey, c.SecretKey, ""),
		Region:           aws.String(c.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if c.Endpoint != "" {
		s3Config.Endpoint = aws.String(c.Endpoint)
	}
	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("s3 session: %w", err)
	}
	return &Uploader{client: s3.New(sess), bucket: c.Bucket, prefix: c.Prefix}, nil
}

// Key joins the configured prefix and name.
func (u *Uploader) Key(name string) string {
	if u.prefix == "" {
		return name
	}
	return u.prefix + "/" + name
}

func contentType(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// Upload copies the local file to key.
func (u *Uploader) Upload(ctx context.Context, localPath, key string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return err
	}
	_, err = u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(st.Size()),
		ContentType:   aws.String(contentType(localPath)),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	fmt.Printf("[S3] uploaded s3://%s/%s (%d bytes)\n", u.bucket, key, st.Size())
	return nil
}
