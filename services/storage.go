package services

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/scifanor/scifanor-backend/config"
)

// PlantImageBucket is the bucket plant photos are uploaded into.
const PlantImageBucket = "plant-images"

// Storage uploads files to an S3-compatible bucket and returns public URLs.
//
// An upload followed by a failed database write leaves the object orphaned in
// the bucket. That is an accepted limitation of the save flow; there is no
// compensation pass.
type Storage struct {
	client        *s3.Client
	publicBaseURL string
}

// NewStorage builds a Storage from the environment. S3_ENDPOINT overrides the
// endpoint for S3-compatible providers; S3_PUBLIC_BASE_URL is the base under
// which uploaded objects are publicly reachable.
func NewStorage(ctx context.Context) (*Storage, error) {
	c := config.New()

	region := config.GetString(c, "S3_REGION", "ap-southeast-1")
	endpoint := config.GetString(c, "S3_ENDPOINT", "")
	publicBase := config.GetString(c, "S3_PUBLIC_BASE_URL", "")

	// S3-compatible providers (MinIO, Supabase storage) need path-style
	// addressing; custom endpoints default to it, AWS proper does not.
	usePathStyle := config.GetBool(c, "S3_FORCE_PATH_STYLE", endpoint != "")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = usePathStyle
	})

	if publicBase == "" && endpoint != "" {
		publicBase = strings.TrimSuffix(endpoint, "/")
	}

	return &Storage{client: client, publicBaseURL: publicBase}, nil
}

// Upload stores the body under a generated key in the given bucket and
// returns the public URL of the object. ext should include the leading dot.
func (s *Storage) Upload(ctx context.Context, bucket, ext string, body io.Reader, contentType string) (string, error) {
	key := objectKey(ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s/%s: %w", bucket, key, err)
	}

	url := s.PublicURL(bucket, key)
	log.Debug().Str("bucket", bucket).Str("key", key).Msg("uploaded object")
	return url, nil
}

// PublicURL returns the public URL for an object key.
func (s *Storage) PublicURL(bucket, key string) string {
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.publicBaseURL, "/"), bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key)
}

const keyAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// objectKey generates a random-suffix key like the original upload path:
// <random>_<unix-millis><ext>
func objectKey(ext string) string {
	b := make([]byte, 10)
	for i := range b {
		b[i] = keyAlphabet[rand.Intn(len(keyAlphabet))]
	}
	name := fmt.Sprintf("%s_%d%s", string(b), time.Now().UnixMilli(), ext)
	return path.Clean(name)
}
