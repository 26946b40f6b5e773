package storage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/reelstack/catalog/internal/domain/video"
	"github.com/reelstack/catalog/pkg/interfaces"
)

// S3MediaGateway is a MediaResourceGateway backed by an S3 bucket. Keys
// follow the videoID/SLOT layout so ClearResources can delete by prefix.
type S3MediaGateway struct {
	client *s3.Client
	bucket string
	prefix string
	logger interfaces.Logger
}

// NewS3MediaGateway loads the default AWS config for the region and wraps an
// S3 client.
func NewS3MediaGateway(ctx context.Context, bucket, prefix, region string, logger interfaces.Logger) (*S3MediaGateway, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3MediaGateway{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}, nil
}

// StoreAudioVideo uploads the payload and returns a PENDING audio/video
// descriptor pointing at its raw location.
func (g *S3MediaGateway) StoreAudioVideo(ctx context.Context, id video.ID, resource video.VideoResource) (video.AudioVideoMedia, error) {
	raw := resource.Resource()
	filepath := Filepath(id, resource.MediaType())
	if err := g.store(ctx, filepath, raw); err != nil {
		return video.AudioVideoMedia{}, err
	}
	return video.NewAudioVideoMedia(raw.Checksum, raw.Name, filepath), nil
}

// StoreImage uploads the payload and returns an image descriptor pointing at
// its location.
func (g *S3MediaGateway) StoreImage(ctx context.Context, id video.ID, resource video.VideoResource) (video.ImageMedia, error) {
	raw := resource.Resource()
	filepath := Filepath(id, resource.MediaType())
	if err := g.store(ctx, filepath, raw); err != nil {
		return video.ImageMedia{}, err
	}
	return video.NewImageMedia(raw.Checksum, raw.Name, filepath), nil
}

// ClearResources deletes every object stored under the video's folder.
func (g *S3MediaGateway) ClearResources(ctx context.Context, id video.ID) error {
	folder := g.fullKey(id.String() + "/")

	listed, err := g.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(g.bucket),
		Prefix: aws.String(folder),
	})
	if err != nil {
		return fmt.Errorf("failed to list objects for %s: %w", id.String(), err)
	}

	for _, object := range listed.Contents {
		_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(g.bucket),
			Key:    object.Key,
		})
		if err != nil {
			return fmt.Errorf("failed to delete %s: %w", aws.ToString(object.Key), err)
		}
	}

	g.logger.Info("cleared media resources",
		interfaces.String("video_id", id.String()),
		interfaces.Int("objects", len(listed.Contents)))
	return nil
}

// GetResource downloads the payload for the video and slot, if present.
func (g *S3MediaGateway) GetResource(ctx context.Context, id video.ID, mediaType video.MediaType) (video.Resource, bool, error) {
	filepath := Filepath(id, mediaType)

	result, err := g.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(g.fullKey(filepath)),
	})
	if err != nil {
		var notFound *s3types.NoSuchKey
		if errors.As(err, &notFound) {
			return video.Resource{}, false, nil
		}
		return video.Resource{}, false, fmt.Errorf("failed to get object %s: %w", filepath, err)
	}
	defer result.Body.Close()

	content, err := io.ReadAll(result.Body)
	if err != nil {
		return video.Resource{}, false, fmt.Errorf("failed to read object %s: %w", filepath, err)
	}

	return video.Resource{
		Content:     content,
		Checksum:    checksumOf(content),
		ContentType: aws.ToString(result.ContentType),
		Name:        mediaType.String(),
	}, true, nil
}

func (g *S3MediaGateway) store(ctx context.Context, filepath string, resource video.Resource) error {
	_, err := g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(g.fullKey(filepath)),
		Body:        bytes.NewReader(resource.Content),
		ContentType: aws.String(resource.ContentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", filepath, err)
	}
	return nil
}

func (g *S3MediaGateway) fullKey(key string) string {
	if g.prefix == "" {
		return key
	}
	return g.prefix + "/" + key
}

func checksumOf(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
