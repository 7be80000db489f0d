package archive

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase/interfaces"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSArchive keeps generated files under {prefix}/{yyyy}/{mm}/{name}.
type GCSArchive struct {
	client *storage.Client
	bucket string
	prefix string
	now    func() time.Time
}

var _ interfaces.IArtifactArchive = (*GCSArchive)(nil)

// NewGCSArchive uses Application Default Credentials unless credentialsJSON
// is given.
func NewGCSArchive(ctx context.Context, bucket, prefix, credentialsJSON string) (*GCSArchive, error) {
	var opts []option.ClientOption
	if strings.TrimSpace(credentialsJSON) != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := client.Bucket(bucket).Attrs(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("gcs bucket %q not found or not accessible: %v", bucket, err)
	}
	logger.For("export", "archive").WithField("bucket", bucket).Info("[export][archive] gcs archive enabled")
	return &GCSArchive{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

func (a *GCSArchive) objectName(name string) string {
	now := a.now()
	return path.Join(a.prefix, now.Format("2006"), now.Format("01"), name)
}

func (a *GCSArchive) Put(ctx context.Context, name string, contentType string, data []byte) error {
	object := a.objectName(name)
	wc := a.client.Bucket(a.bucket).Object(object).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return err
	}
	logger.For("export", "archive").WithField("object", object).Info("[export][archive] stored")
	return nil
}

func (a *GCSArchive) Close() error {
	return a.client.Close()
}
