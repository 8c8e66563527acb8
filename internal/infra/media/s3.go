package media

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	"cromptch/config"
	"cromptch/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const deleteTokenMetadataKey = "delete-token"

// s3Host stores images as objects keyed by their id in an S3-compatible bucket.
type s3Host struct {
	client *s3.Client
	bucket string
	logger *slog.Logger
}

// NewS3Host builds an S3 client from the media.s3 config section.
// Static credentials are used when set, the default AWS chain otherwise.
func NewS3Host(ctx context.Context, cfg config.S3Config, logger *slog.Logger) (service.MediaHost, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &s3Host{client: client, bucket: cfg.Bucket, logger: logger}, nil
}

func (h *s3Host) Upload(ctx context.Context, filename string, content io.Reader) (*service.UploadedMedia, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}

	id := uuid.New()
	deleteToken := uuid.NewString()

	_, err = h.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(id.String()),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(http.DetectContentType(data)),
		Metadata: map[string]string{
			deleteTokenMetadataKey: deleteToken,
			"filename":             filename,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to put object")
	}

	h.logger.Debug("Image uploaded to bucket",
		slog.String("bucket", h.bucket),
		slog.String("image_id", id.String()),
	)

	return &service.UploadedMedia{ID: id, DeleteToken: deleteToken}, nil
}

func (h *s3Host) Fetch(ctx context.Context, id uuid.UUID) (*service.MediaObject, error) {
	out, err := h.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(id.String()),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, service.ErrMediaNotFound
		}

		return nil, errors.Wrap(err, "failed to get object")
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read object")
	}

	contentType := aws.ToString(out.ContentType)
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &service.MediaObject{Data: data, ContentType: contentType}, nil
}

// Thumbnail serves the original; the bucket holds no derived sizes.
func (h *s3Host) Thumbnail(ctx context.Context, id uuid.UUID) (*service.MediaObject, error) {
	return h.Fetch(ctx, id)
}
