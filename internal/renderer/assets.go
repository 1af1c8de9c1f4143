package renderer

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Assets holds the decorative images a document may use. A nil slice means
// the asset is unavailable and the drawn fallback is used instead.
type Assets struct {
	Cover []byte
	Logo  []byte
}

// AssetFetcher supplies brand assets for a render. Fetching is best-effort:
// implementations absorb failures and return nil slices rather than erroring,
// because a document must never fail over a missing decorative image.
type AssetFetcher interface {
	FetchAssets(ctx context.Context) Assets
}

// S3Getter is the slice of the S3 client the fetcher needs.
type S3Getter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// BrandAssets fetches the cover and logo images from http(s) URLs or
// s3://bucket/key locations. Both are fetched concurrently per render.
type BrandAssets struct {
	coverURL string
	logoURL  string
	client   *http.Client
	s3       S3Getter
}

// NewBrandAssets creates a fetcher for the configured asset URLs. s3Client
// may be nil when neither URL uses the s3:// scheme.
func NewBrandAssets(coverURL, logoURL string, s3Client S3Getter) *BrandAssets {
	return &BrandAssets{
		coverURL: coverURL,
		logoURL:  logoURL,
		client:   &http.Client{Timeout: 30 * time.Second},
		s3:       s3Client,
	}
}

// FetchAssets fetches both images at the same time. Any failure is logged
// and the corresponding asset left nil.
func (b *BrandAssets) FetchAssets(ctx context.Context) Assets {
	var assets Assets
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assets.Cover = b.fetch(ctx, b.coverURL)
	}()
	go func() {
		defer wg.Done()
		assets.Logo = b.fetch(ctx, b.logoURL)
	}()
	wg.Wait()
	return assets
}

func (b *BrandAssets) fetch(ctx context.Context, url string) []byte {
	if url == "" {
		return nil
	}
	var data []byte
	var err error
	if strings.HasPrefix(url, "s3://") {
		data, err = b.fetchS3(ctx, url)
	} else {
		data, err = b.fetchHTTP(ctx, url)
	}
	if err != nil {
		log.Printf("[Renderer] failed to fetch asset %s: %v", url, err)
		return nil
	}
	return data
}

func (b *BrandAssets) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (b *BrandAssets) fetchS3(ctx context.Context, url string) ([]byte, error) {
	if b.s3 == nil {
		return nil, fmt.Errorf("no S3 client configured")
	}
	rest := strings.TrimPrefix(url, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("malformed s3 URL")
	}
	out, err := b.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = out.Body.Close() }()
	return io.ReadAll(out.Body)
}
