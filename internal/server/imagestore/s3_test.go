package imagestore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubClients(t *testing.T) *s3.Options {
	t.Helper()
	origLoad, origNewS3, origNewPre := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "eu-west-1", lo.Region)
		return aws.Config{}, nil
	}

	captured := &s3.Options{}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(captured)
		}
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
	return captured
}

func newTestStore(t *testing.T) (*S3Store, *s3.Options) {
	opts := stubClients(t)
	st, err := NewS3Store(context.Background(), Options{
		User: "u", Password: "p", Bucket: "images", Region: "eu-west-1",
		Endpoint: "http://127.0.0.1:9000", PresignTTL: 10 * time.Minute,
	})
	require.NoError(t, err)
	st.now = func() time.Time { return time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC) }
	return st, opts
}

func TestNewS3Store_AppliesOptions(t *testing.T) {
	_, opts := newTestStore(t)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
}

func TestNewS3Store_LoadError(t *testing.T) {
	stubClients(t)
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err := NewS3Store(context.Background(), Options{Region: "eu-west-1"})
	require.EqualError(t, err, "load-fail")
}

func TestPut(t *testing.T) {
	st, _ := newTestStore(t)

	orig := putObject
	t.Cleanup(func() { putObject = orig })

	var got *s3.PutObjectInput
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		got = in
		return &s3.PutObjectOutput{}, nil
	}

	key, err := st.Put(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "cases/2025/07/04/"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)

	require.NotNil(t, got)
	assert.Equal(t, "images", *got.Bucket)
	assert.Equal(t, key, *got.Key)
	assert.Equal(t, "image/png", *got.ContentType)
	body, _ := io.ReadAll(got.Body)
	assert.Equal(t, "img", string(body))

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return nil, errors.New("denied")
	}
	_, err = st.Put(context.Background(), []byte("img"), "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "denied")
}

func TestPresignGet(t *testing.T) {
	st, _ := newTestStore(t)

	orig := presignGetObject
	t.Cleanup(func() { presignGetObject = orig })

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		assert.Equal(t, 10*time.Minute, po.Expires)
		assert.Equal(t, "cases/k", *in.Key)
		return &v4.PresignedHTTPRequest{URL: "http://signed/cases/k"}, nil
	}

	url, err := st.PresignGet(context.Background(), "cases/k")
	require.NoError(t, err)
	assert.Equal(t, "http://signed/cases/k", url)

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("sign-fail")
	}
	_, err = st.PresignGet(context.Background(), "cases/k")
	require.ErrorContains(t, err, "sign-fail")
}

func TestNewKey_UnknownType(t *testing.T) {
	key := NewKey(time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), "application/x-unknown-thing")
	assert.True(t, strings.HasPrefix(key, "cases/2024/01/09/"))
	assert.NotContains(t, key[len("cases/2024/01/09/"):], ".")
}
