package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/maheshrc27/adspark/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeleter struct {
	inputs []*s3.DeleteObjectInput
	err    error
}

func (f *fakeDeleter) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.inputs = append(f.inputs, params)
	return &s3.DeleteObjectOutput{}, f.err
}

func newTestR2(deleter *fakeDeleter) *R2Service {
	r := NewR2Service(cfg.R2{BucketName: "generated", PublicURL: "https://pub.r2.dev/"})
	r.client = deleter
	return r
}

func TestR2Service_Owns(t *testing.T) {
	r := newTestR2(&fakeDeleter{})

	assert.True(t, r.Owns("https://pub.r2.dev/posts/a.png"))
	assert.False(t, r.Owns("https://pub.r2.dev/"))
	assert.False(t, r.Owns("https://pub.r2.dev.evil.com/a.png"))
	assert.False(t, r.Owns("https://images.example.com/a.png"))
	assert.False(t, NewR2Service(cfg.R2{}).Owns("https://pub.r2.dev/a.png"))
}

func TestR2Service_DeleteImage(t *testing.T) {
	deleter := &fakeDeleter{}
	r := newTestR2(deleter)

	err := r.DeleteImage(context.Background(), "https://pub.r2.dev/posts/my%20image.png?v=2")
	require.NoError(t, err)
	require.Len(t, deleter.inputs, 1)
	assert.Equal(t, "generated", aws.ToString(deleter.inputs[0].Bucket))
	assert.Equal(t, "posts/my image.png", aws.ToString(deleter.inputs[0].Key))
}

func TestR2Service_DeleteImageErrors(t *testing.T) {
	deleter := &fakeDeleter{err: errors.New("access denied")}
	r := newTestR2(deleter)

	assert.EqualError(t, r.DeleteImage(context.Background(), "https://pub.r2.dev/a.png"), "access denied")
	assert.Error(t, r.DeleteImage(context.Background(), "https://elsewhere.dev/a.png"))
	assert.Len(t, deleter.inputs, 1)
}
