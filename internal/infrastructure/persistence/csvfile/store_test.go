package csvfile

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/infrastructure/logger"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

const testPath = "data/library_books.csv"

func newTestStore(t *testing.T) (afero.Fs, book.Repository) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return fs, NewStore(fs, testPath, logger.Discard())
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()
	fs, store := newTestStore(t)

	require.NoError(t, store.Initialize(ctx))

	data, err := afero.ReadFile(fs, testPath)
	require.NoError(t, err)
	assert.Equal(t, "Book ID,Title,Author,Genre,Available\n", string(data))

	t.Run("重复调用不覆盖已有数据", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, book.Catalog{book.NewBook("1", "Dune", "Herbert", "SciFi")}))
		require.NoError(t, store.Initialize(ctx))

		catalog, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, catalog.Len())
	})
}

func TestLoadMissingFile(t *testing.T) {
	_, store := newTestStore(t)

	catalog, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, catalog.IsEmpty())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs, store := newTestStore(t)
	require.NoError(t, store.Initialize(ctx))

	catalog := book.Catalog{
		{ID: "007", Title: "Casino Royale", Author: "Ian Fleming", Genre: "Spy", Available: book.Unavailable},
		{ID: "7", Title: "Dune", Author: "Frank Herbert", Genre: "SciFi", Available: book.Available},
		{ID: "12", Title: "Gödel, Escher, Bach", Author: `Douglas "Doug" Hofstadter`, Genre: "Non-fiction", Available: book.Available},
	}
	require.NoError(t, store.Save(ctx, catalog))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog, loaded)

	data, err := afero.ReadFile(fs, testPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "007,Casino Royale,Ian Fleming,Spy,No\n", "编号按文本原样保存")
	assert.Contains(t, string(data), `"Gödel, Escher, Bach"`, "含逗号的字段加引号")

	t.Run("保存空目录只保留表头", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, book.Catalog{}))
		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, book.Catalog{}, loaded)
	})
}

func TestLoadSchemaErrors(t *testing.T) {
	tests := map[string]string{
		"空文件":   "",
		"表头不对":  "id,title,author,genre,available\n",
		"列数不对":  "Book ID,Title,Author,Genre\n1,a,b,c\n",
		"行列数不对": "Book ID,Title,Author,Genre,Available\n1,a,b\n",
		"引号不闭合": "Book ID,Title,Author,Genre,Available\n1,\"a,b,c,Yes\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			fs, store := newTestStore(t)
			require.NoError(t, afero.WriteFile(fs, testPath, []byte(content), 0o644))

			_, err := store.Load(context.Background())
			assert.ErrorIs(t, err, apperrors.ErrStoreSchema)
		})
	}
}

func TestLoadWithBOM(t *testing.T) {
	fs, store := newTestStore(t)
	content := "\xef\xbb\xbfBook ID,Title,Author,Genre,Available\n1,Dune,Herbert,SciFi,Yes\n"
	require.NoError(t, afero.WriteFile(fs, testPath, []byte(content), 0o644))

	catalog, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, book.Catalog{book.NewBook("1", "Dune", "Herbert", "SciFi")}, catalog)
}

func TestWriteFailures(t *testing.T) {
	ctx := context.Background()
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, testPath, []byte("Book ID,Title,Author,Genre,Available\n"), 0o644))
	store := NewStore(afero.NewReadOnlyFs(base), testPath, logger.Discard())

	err := store.Save(ctx, book.Catalog{book.NewBook("1", "Dune", "Herbert", "SciFi")})
	assert.ErrorIs(t, err, apperrors.ErrStoreIO)

	t.Run("只读文件系统上初始化缺失的文件失败", func(t *testing.T) {
		store := NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), testPath, logger.Discard())
		assert.ErrorIs(t, store.Initialize(ctx), apperrors.ErrStoreIO)
	})
}

func TestCodecEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCodec().Encode(&buf, book.Catalog{book.NewBook("1", "Dune", "Herbert", "SciFi")}))
	assert.Equal(t, "Book ID,Title,Author,Genre,Available\n1,Dune,Herbert,SciFi,Yes\n", buf.String())
}
