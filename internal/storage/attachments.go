// Package storage keeps booking attachments in an S3 compatible bucket
// next to a small webp preview.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/consultation-scheduler/internal/domain/appointment"
)

const (
	MaxAttachmentBytes = 5 << 20
	PreviewWidth       = 320
	keyPrefix          = "attachments/"
)

var (
	ErrNotImage = errors.New("attachment is not a png or jpeg image")
	ErrTooLarge = errors.New("attachment too large")
	ErrEmpty    = errors.New("attachment is empty")
)

var allowedContentTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

// ObjectPutter is the slice of the S3 client the uploader needs.
type ObjectPutter interface {
	PutObject(
		ctx context.Context,
		params *s3.PutObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.PutObjectOutput, error)
}

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// NewS3Client builds a path-style client, which also works against MinIO.
func NewS3Client(cfg S3Config) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: true,
	}
	if cfg.AccessKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts)
}

// Stored is the result of an upload. Key is the reference a booking
// request carries in its attachment field.
type Stored struct {
	Key         string `json:"key"`
	PreviewKey  string `json:"preview_key"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

type AttachmentStore struct {
	client ObjectPutter
	bucket string
	newID  func() string
}

func NewAttachmentStore(client ObjectPutter, bucket string) *AttachmentStore {
	return &AttachmentStore{
		client: client,
		bucket: bucket,
		newID:  uuid.NewString,
	}
}

// Upload checks that data is a png or jpeg image, then stores the original
// and its webp preview.
func (s *AttachmentStore) Upload(
	ctx context.Context,
	filename string,
	data []byte,
) (Stored, error) {

	if len(data) == 0 {
		return Stored{}, ErrEmpty
	}
	if len(data) > MaxAttachmentBytes {
		return Stored{}, ErrTooLarge
	}

	ext := strings.ToLower(path.Ext(filename))
	if !appointment.IsAllowedImage(filename) {
		return Stored{}, ErrNotImage
	}

	contentType := http.DetectContentType(data)
	if _, ok := allowedContentTypes[contentType]; !ok {
		return Stored{}, ErrNotImage
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Stored{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	preview, err := EncodePreview(img, PreviewWidth)
	if err != nil {
		return Stored{}, fmt.Errorf("encode preview: %w", err)
	}

	id := s.newID()
	key := keyPrefix + id + ext
	previewKey := keyPrefix + id + ".preview.webp"

	if err := s.put(ctx, key, contentType, data); err != nil {
		return Stored{}, err
	}
	if err := s.put(ctx, previewKey, "image/webp", preview); err != nil {
		return Stored{}, err
	}

	b := img.Bounds()
	return Stored{
		Key:         key,
		PreviewKey:  previewKey,
		ContentType: contentType,
		Size:        len(data),
		Width:       b.Dx(),
		Height:      b.Dy(),
	}, nil
}

func (s *AttachmentStore) put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// EncodePreview scales img down to at most maxWidth pixels wide and encodes
// it as lossy webp.
func EncodePreview(img image.Image, maxWidth int) ([]byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, ErrNotImage
	}

	if w > maxWidth {
		h = h * maxWidth / w
		if h == 0 {
			h = 1
		}
		w = maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 75}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
