package s3

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/xitongsys/parquet-go-source/buffer"
	"go.uber.org/zap"
)

// SpriteStore uploads sprites to <bucket>/<prefix>/<species>.png.
type SpriteStore struct {
	client *Client
	bucket string
	prefix string
	sugar  *zap.SugaredLogger
}

func NewSpriteStore(client *Client, sugar *zap.SugaredLogger, bucket, prefix string) *SpriteStore {
	return &SpriteStore{
		client: client,
		bucket: bucket,
		prefix: prefix,
		sugar:  sugar,
	}
}

func (s *SpriteStore) Key(species string) string {
	return path.Join(s.prefix, species+".png")
}

func (s *SpriteStore) Save(ctx context.Context, species string, image []byte) (string, error) {
	body := buffer.NewBufferFileCapacity(len(image))
	if _, err := body.Write(image); err != nil {
		return "", err
	}
	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	key := s.Key(species)
	s.sugar.Infof("Sending sprite of size %d to s3://%s/%s", len(image), s.bucket, key)
	if err := s.client.PutFile(ctx, body, s.bucket, key, "image/png"); err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
