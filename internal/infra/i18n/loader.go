package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"koostory/internal/domain/entity"
	"koostory/internal/domain/service"
	"koostory/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// ErrBundleNotFound is returned when the bucket has no bundle for a language.
var ErrBundleNotFound = errors.New("translation bundle not found")

type blobLoader struct {
	bucket *blob.Bucket
}

// NewBlobLoader reads "{lang}.json" objects from the bucket.
func NewBlobLoader(bucket *blob.Bucket) service.TranslationLoader {
	return &blobLoader{bucket: bucket}
}

// Load reads and flattens one bundle. Nested objects become dotted keys ("hero.title").
func (l *blobLoader) Load(ctx context.Context, lang entity.Language) (map[string]string, error) {
	key := lang.String() + ".json"

	data, err := l.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrap(ErrBundleNotFound, key)
		}

		return nil, errors.Wrapf(err, "read bundle %s", key)
	}

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, errors.Wrapf(err, "parse bundle %s", key)
	}

	flat := make(map[string]string)
	flatten("", tree, flat)

	return flat, nil
}

func flatten(prefix string, node any, out map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			flatten(join(prefix, k), child, out)
		}
	case []any:
		for i, child := range v {
			flatten(join(prefix, strconv.Itoa(i)), child, out)
		}
	case string:
		out[prefix] = v
	case nil:
	default:
		out[prefix] = fmt.Sprint(v)
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
