package i18n

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"koostory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

type countingLoader struct {
	calls   atomic.Int32
	delay   time.Duration
	bundles map[entity.Language]map[string]string
}

func (l *countingLoader) Load(ctx context.Context, lang entity.Language) (map[string]string, error) {
	l.calls.Add(1)
	if l.delay > 0 {
		time.Sleep(l.delay)
	}
	b, ok := l.bundles[lang]
	if !ok {
		return nil, ErrBundleNotFound
	}

	return b, nil
}

func testLanguages() entity.Languages {
	return entity.Languages{entity.LanguageEnglish, entity.LanguageKorean}
}

func TestBlobLoader_FlattensNestedKeys(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	require.NoError(t, bucket.WriteAll(ctx, "ko.json",
		[]byte(`{"nav":{"blog":"블로그","login":"로그인"},"steps":["하나","둘"],"count":3}`), nil))

	got, err := NewBlobLoader(bucket).Load(ctx, entity.LanguageKorean)
	require.NoError(t, err)

	assert.Equal(t, "블로그", got["nav.blog"])
	assert.Equal(t, "로그인", got["nav.login"])
	assert.Equal(t, "둘", got["steps.1"])
	assert.Equal(t, "3", got["count"])
}

func TestBlobLoader_MissingBundle(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	_, err := NewBlobLoader(bucket).Load(context.Background(), entity.LanguageKorean)
	assert.ErrorIs(t, err, ErrBundleNotFound)
}

func TestCatalog_TranslatorFallsBackToDefaultThenKey(t *testing.T) {
	loader := &countingLoader{bundles: map[entity.Language]map[string]string{
		entity.LanguageEnglish: {"hero.title": "Requirements that ship", "nav.blog": "Blog"},
		entity.LanguageKorean:  {"hero.title": "출시되는 요구사항"},
	}}
	c := newCatalog(loader, nil, entity.LanguageEnglish, testLanguages())

	tr, err := c.Translator(context.Background(), entity.LanguageKorean)
	require.NoError(t, err)

	assert.Equal(t, entity.LanguageKorean, tr.Language())
	assert.Equal(t, "출시되는 요구사항", tr.T("hero.title"))
	assert.Equal(t, "Blog", tr.T("nav.blog"))
	assert.Equal(t, "missing.key", tr.T("missing.key"))
}

func TestTranslator_Placeholders(t *testing.T) {
	tr := &Translator{messages: map[string]string{"footer.copy": "© {year} {name}"}}
	assert.Equal(t, "© 2026 Koostory", tr.T("footer.copy", "year", "2026", "name", "Koostory"))
}

func TestCatalog_ConcurrentFirstRequestsShareOneLoad(t *testing.T) {
	loader := &countingLoader{
		delay: 20 * time.Millisecond,
		bundles: map[entity.Language]map[string]string{
			entity.LanguageEnglish: {"a": "A"},
		},
	}
	c := newCatalog(loader, nil, entity.LanguageEnglish, testLanguages())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr, err := c.Translator(context.Background(), entity.LanguageEnglish)
			assert.NoError(t, err)
			assert.Equal(t, "A", tr.T("a"))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), loader.calls.Load())

	c.Invalidate(entity.LanguageEnglish)
	_, err := c.Translator(context.Background(), entity.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, int32(2), loader.calls.Load())
}

func TestCatalog_CancelledCallerDoesNotPoisonCache(t *testing.T) {
	loader := &countingLoader{
		delay: 30 * time.Millisecond,
		bundles: map[entity.Language]map[string]string{
			entity.LanguageEnglish: {"a": "A"},
		},
	}
	c := newCatalog(loader, nil, entity.LanguageEnglish, testLanguages())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := c.Translator(ctx, entity.LanguageEnglish)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	tr, err := c.Translator(context.Background(), entity.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, "A", tr.T("a"))
}

func TestCatalog_PreloadRequiresEveryBundle(t *testing.T) {
	loader := &countingLoader{bundles: map[entity.Language]map[string]string{
		entity.LanguageEnglish: {"a": "A"},
	}}
	c := newCatalog(loader, nil, entity.LanguageEnglish, testLanguages())

	err := c.Preload(context.Background())
	assert.ErrorIs(t, err, ErrBundleNotFound)
}
