package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/maheshrc27/adspark/configs"
)

type objectDeleter interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// R2Service removes generated images from the Cloudflare R2 bucket the automation
// pipeline uploads into. Only URLs under R2.PublicURL are considered ours.
type R2Service struct {
	config cfg.R2

	once   sync.Once
	client objectDeleter
	err    error
}

func NewR2Service(r2 cfg.R2) *R2Service {
	return &R2Service{config: r2}
}

func (r *R2Service) r2Client(ctx context.Context) (objectDeleter, error) {
	r.once.Do(func() {
		if r.client != nil {
			return
		}
		awsCfg, err := config.LoadDefaultConfig(ctx,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r.config.AccessKey, r.config.SecretKey, "")),
			config.WithRegion("auto"),
		)
		if err != nil {
			slog.Info(err.Error())
			r.err = err
			return
		}

		r.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.config.AccountID))
		})
	})
	return r.client, r.err
}

func (r *R2Service) Owns(imageURL string) bool {
	_, ok := r.objectKey(imageURL)
	return ok
}

func (r *R2Service) objectKey(imageURL string) (string, bool) {
	base := strings.TrimRight(r.config.PublicURL, "/")
	if base == "" || !strings.HasPrefix(imageURL, base+"/") {
		return "", false
	}

	key := strings.TrimPrefix(imageURL, base+"/")
	if i := strings.IndexAny(key, "?#"); i >= 0 {
		key = key[:i]
	}
	key, err := url.PathUnescape(key)
	if err != nil || key == "" {
		return "", false
	}
	return key, true
}

func (r *R2Service) DeleteImage(ctx context.Context, imageURL string) error {
	key, ok := r.objectKey(imageURL)
	if !ok {
		return errors.New("image is not stored in the configured bucket")
	}

	client, err := r.r2Client(ctx)
	if err != nil {
		return err
	}

	_, err = client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	slog.Info("removed generated image", "bucket", r.config.BucketName, "key", key)
	return nil
}
