package s3

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/thiagohrcosta/FastFeet-API/config"
)

type Client struct {
	logger *zap.Logger
	region string
	bucket string
}

func New(
	ctx context.Context,
	logger *zap.Logger,
	cfg config.S3,

) (*Client, error) {
	// ...

	return &Client{
		logger: logger,
		region: cfg.Region,
		bucket: cfg.BucketPhotos,
	}, nil
}

// Upload stores a delivery photo and returns its durable public URL. The
// round trip is blocking; a failure here aborts the whole delivery
// create/update.
func (c *Client) Upload(ctx context.Context, deliveryID string, in *multipart.FileHeader) (string, error) {
	f, err := in.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	key := genSafeStorageKey(in, deliveryID)

	// example: save obj to s3
	// c.PutObject(ctx, key, f)

	c.logger.Info("photo uploaded",
		zap.String("bucket", c.bucket),
		zap.String("key", key),
		zap.Int64("size_bytes", in.Size),
	)

	return c.GetPublicURL(key), nil
}

func (c *Client) GetPublicURL(key string) string {
	return fmt.Sprintf("https://%s.example.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}

func (c *Client) GetBucket() string { return c.bucket }

const maxBaseNameLen = 100

var (
	fileSafeRe    = regexp.MustCompile(`[^A-Za-z0-9\.\_\- ]+`)
	leadingDotsRe = regexp.MustCompile(`^\.+`)
)

// genSafeStorageKey: "deliveries/YYYY/MM/DD/<ts-nanosec>/<delivery-id>/<filename>.ext"
func genSafeStorageKey(in *multipart.FileHeader, deliveryID string) string {
	clean := strings.TrimSpace(filepath.Base(sanitizeFileName(in.Filename)))
	clean = strings.Map(func(r rune) rune {
		if r == '\x00' || r < 0x20 {
			return -1
		}
		return r
	}, clean)
	clean = leadingDotsRe.ReplaceAllString(clean, "")

	ext := strings.ToLower(filepath.Ext(clean))
	base := strings.TrimSuffix(clean, ext)

	if ext == "" {
		if exts, _ := mime.ExtensionsByType(in.Header.Get("Content-Type")); len(exts) > 0 {
			ext = exts[0]
		}
	}

	base = fileSafeRe.ReplaceAllString(base, "-")
	base = strings.Trim(base, "- .")

	if len(base) > maxBaseNameLen {
		base = base[:maxBaseNameLen]
	}

	if base == "" {
		base = "photo"
	}

	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if ext == "" {
		ext = ".jpg"
	}

	safeFileName := base + ext

	now := time.Now().UTC()
	return fmt.Sprintf(
		"deliveries/%04d/%02d/%02d/%s/%s/%s",
		now.Year(), int(now.Month()), now.Day(),
		now.Format("20060102T150405.000000000Z"),
		strings.ToLower(strings.ReplaceAll(deliveryID, "-", "")),
		safeFileName,
	)
}

// sanitizeFileName makes the file name ASCII standard
func sanitizeFileName(original string) string {
	if original == "" {
		return "photo"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "photo"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := strings.ToLower(path.Ext(s))
	base := strings.TrimSuffix(s, ext)

	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-' || r == '_':
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		case r == '.' || unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		default:
		}
	}
	base = strings.Trim(b.String(), "-")

	if base == "" {
		base = "photo"
	}

	for utf8.RuneCountInString(base)+len(ext) > maxBaseNameLen {
		_, size := utf8.DecodeLastRuneInString(base)
		if size <= 0 || size > len(base) {
			break
		}
		base = base[:len(base)-size]
	}

	return base + ext
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
