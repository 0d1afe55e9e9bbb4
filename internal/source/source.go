// Package source fetches mortgage pool documents from local disk or object
// storage. The scoring core never sees where a pool came from.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrUnsupportedScheme is returned for URIs other than file, s3 and gs.
var ErrUnsupportedScheme = errors.New("unsupported source scheme")

// Source abstracts blob storage holding pool documents.
type Source interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// Location identifies a pool document.
type Location struct {
	Scheme string // file, s3 or gs
	Bucket string // empty for file
	Key    string // object key, or filesystem path for file
}

func (l Location) String() string {
	if l.Scheme == "file" {
		return l.Key
	}
	return l.Scheme + "://" + l.Bucket + "/" + l.Key
}

// ParseURI splits a pool reference into a Location. Plain paths and
// file:// URIs refer to the local filesystem.
func ParseURI(uri string) (Location, error) {
	if uri == "" {
		return Location{}, errors.New("empty source uri")
	}

	scheme, rest, found := strings.Cut(uri, "://")
	if !found {
		return Location{Scheme: "file", Key: uri}, nil
	}

	switch scheme {
	case "file":
		if rest == "" {
			return Location{}, fmt.Errorf("source uri %q: missing path", uri)
		}
		return Location{Scheme: "file", Key: rest}, nil
	case "s3", "gs":
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return Location{}, fmt.Errorf("source uri %q: missing bucket", uri)
		}
		if key == "" {
			return Location{}, fmt.Errorf("source uri %q: missing object key", uri)
		}
		return Location{Scheme: scheme, Bucket: bucket, Key: key}, nil
	default:
		return Location{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

// Options configures remote backends.
type Options struct {
	S3     S3Config
	Logger *logrus.Logger
}

// Open creates the Source serving loc.
func Open(ctx context.Context, loc Location, opts Options) (Source, error) {
	switch loc.Scheme {
	case "file":
		return NewLocalSource(""), nil
	case "s3":
		return NewS3Source(ctx, loc.Bucket, opts.S3)
	case "gs":
		return NewGCSSource(ctx, loc.Bucket)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, loc.Scheme)
	}
}

// Fetch resolves uri and returns the document it points at.
func Fetch(ctx context.Context, uri string, opts Options) ([]byte, error) {
	loc, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	src, err := Open(ctx, loc, opts)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", loc, err)
	}
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}

	if opts.Logger != nil {
		opts.Logger.WithFields(logrus.Fields{
			"scheme": loc.Scheme,
			"bucket": loc.Bucket,
			"key":    loc.Key,
		}).Debug("fetching pool document")
	}

	data, err := src.Fetch(ctx, loc.Key)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", loc, err)
	}
	return data, nil
}
