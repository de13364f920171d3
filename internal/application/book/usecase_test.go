package book_test

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/infrastructure/logger"
	"github.com/xiebiao/library/internal/infrastructure/persistence/csvfile"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/notice"
)

type useCases struct {
	add    *appbook.AddBookUseCase
	list   *appbook.ListBooksUseCase
	search *appbook.SearchBooksUseCase
	find   *appbook.FindBookUseCase
	update *appbook.UpdateBookUseCase
	delete *appbook.DeleteBookUseCase
	export *appbook.ExportBooksUseCase
}

func setup(t *testing.T) useCases {
	t.Helper()

	log := logger.Discard()
	repo := csvfile.NewStore(afero.NewMemMapFs(), "library_books.csv", log)
	svc := book.NewService(repo, log)
	require.NoError(t, svc.Initialize(context.Background()))

	return useCases{
		add:    appbook.NewAddBookUseCase(svc),
		list:   appbook.NewListBooksUseCase(svc),
		search: appbook.NewSearchBooksUseCase(svc),
		find:   appbook.NewFindBookUseCase(svc),
		update: appbook.NewUpdateBookUseCase(svc),
		delete: appbook.NewDeleteBookUseCase(svc),
		export: appbook.NewExportBooksUseCase(svc, csvfile.NewCodec()),
	}
}

func TestAddBook(t *testing.T) {
	ctx := context.Background()
	uc := setup(t)

	resp, err := uc.add.Execute(ctx, appbook.AddBookRequest{ID: "1", Title: "Dune", Author: "Herbert", Genre: "SciFi"})
	require.NoError(t, err)
	assert.Equal(t, notice.LevelSuccess, resp.Notice.Level)
	assert.Contains(t, resp.Notice.Message, "Dune")
	assert.Equal(t, appbook.BookItem{ID: "1", Title: "Dune", Author: "Herbert", Genre: "SciFi", Available: "Yes"}, resp.Book)

	_, err = uc.add.Execute(ctx, appbook.AddBookRequest{ID: "1", Title: "Dune", Author: "Herbert", Genre: "SciFi"})
	assert.ErrorIs(t, err, book.ErrBookIDDuplicate)
	assert.Equal(t, notice.Error("图书编号已存在"), notice.FromError(err))

	_, err = uc.add.Execute(ctx, appbook.AddBookRequest{ID: "2", Title: "Emma"})
	assert.ErrorIs(t, err, book.ErrMissingFields)
}

func TestListBooks(t *testing.T) {
	ctx := context.Background()
	uc := setup(t)

	resp, err := uc.list.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, notice.LevelInfo, resp.Notice.Level)
	assert.Empty(t, resp.Books)
	assert.NotNil(t, resp.Books)

	_, err = uc.add.Execute(ctx, appbook.AddBookRequest{ID: "1", Title: "Dune", Author: "Herbert", Genre: "SciFi"})
	require.NoError(t, err)

	resp, err = uc.list.Execute(ctx)
	require.NoError(t, err)
	assert.True(t, resp.Notice.IsZero())
	assert.Equal(t, 1, resp.Total)
}

func TestSearchBooks(t *testing.T) {
	ctx := context.Background()
	uc := setup(t)

	resp, err := uc.search.Execute(ctx, appbook.SearchBooksRequest{Field: "title", Term: "dune"})
	require.NoError(t, err)
	assert.Equal(t, notice.Info("图书馆中暂无图书"), resp.Notice)

	for _, req := range []appbook.AddBookRequest{
		{ID: "1", Title: "Dune", Author: "Frank Herbert", Genre: "SciFi"},
		{ID: "2", Title: "Emma", Author: "Jane Austen", Genre: "Novel"},
	} {
		_, err := uc.add.Execute(ctx, req)
		require.NoError(t, err)
	}

	resp, err = uc.search.Execute(ctx, appbook.SearchBooksRequest{Field: "Author", Term: "AUSTEN"})
	require.NoError(t, err)
	require.Len(t, resp.Books, 1)
	assert.Equal(t, "2", resp.Books[0].ID)
	assert.Equal(t, "Author", resp.Field)

	resp, err = uc.search.Execute(ctx, appbook.SearchBooksRequest{Field: "Title", Term: ""})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	resp, err = uc.search.Execute(ctx, appbook.SearchBooksRequest{Field: "Title", Term: "tolkien"})
	require.NoError(t, err)
	assert.Equal(t, notice.Info("没有找到匹配的图书"), resp.Notice)
	assert.Empty(t, resp.Books)

	_, err = uc.search.Execute(ctx, appbook.SearchBooksRequest{Field: "Genre", Term: "x"})
	assert.ErrorIs(t, err, book.ErrInvalidSearchField)
}

func TestFindThenUpdate(t *testing.T) {
	ctx := context.Background()
	uc := setup(t)

	_, err := uc.add.Execute(ctx, appbook.AddBookRequest{ID: "1", Title: "Dune", Author: "Herbert", Genre: "SciFi"})
	require.NoError(t, err)

	current, err := uc.find.Execute(ctx, "1")
	require.NoError(t, err)

	resp, err := uc.update.Execute(ctx, appbook.UpdateBookRequest{
		ID: current.ID, Title: current.Title, Author: current.Author, Genre: current.Genre, Available: "No",
	})
	require.NoError(t, err)
	assert.Equal(t, notice.LevelSuccess, resp.Notice.Level)

	found, err := uc.find.Execute(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "No", found.Available)

	t.Run("借阅状态非法", func(t *testing.T) {
		_, err := uc.update.Execute(ctx, appbook.UpdateBookRequest{ID: "1", Available: "maybe"})
		assert.ErrorIs(t, err, book.ErrInvalidAvailability)
	})

	t.Run("提交前图书已被删除", func(t *testing.T) {
		_, err := uc.delete.Execute(ctx, "1")
		require.NoError(t, err)

		_, err = uc.update.Execute(ctx, appbook.UpdateBookRequest{ID: "1", Title: "x", Available: "Yes"})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()
	uc := setup(t)

	_, err := uc.delete.Execute(ctx, "404")
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.False(t, apperrors.IsServerError(err))

	_, err = uc.add.Execute(ctx, appbook.AddBookRequest{ID: "1", Title: "Dune", Author: "Herbert", Genre: "SciFi"})
	require.NoError(t, err)

	n, err := uc.delete.Execute(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, notice.LevelSuccess, n.Level)

	_, err = uc.find.Execute(ctx, "1")
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestExportBooks(t *testing.T) {
	ctx := context.Background()
	uc := setup(t)

	var buf bytes.Buffer
	require.NoError(t, uc.export.Execute(ctx, &buf))
	assert.Equal(t, "Book ID,Title,Author,Genre,Available\n", buf.String())

	_, err := uc.add.Execute(ctx, appbook.AddBookRequest{ID: "1", Title: "Dune", Author: "Herbert", Genre: "SciFi"})
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, uc.export.Execute(ctx, &buf))
	assert.Equal(t, "Book ID,Title,Author,Genre,Available\n1,Dune,Herbert,SciFi,Yes\n", buf.String())
}

func TestConcurrentAddOnDisk(t *testing.T) {
	ctx := context.Background()
	log := logger.Discard()
	repo := csvfile.NewStore(afero.NewOsFs(), filepath.Join(t.TempDir(), "library_books.csv"), log)
	svc := book.NewService(repo, log)
	require.NoError(t, svc.Initialize(ctx))

	add := appbook.NewAddBookUseCase(svc)
	list := appbook.NewListBooksUseCase(svc)

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := add.Execute(ctx, appbook.AddBookRequest{
				ID: fmt.Sprintf("B%03d", i), Title: "Dune", Author: "Herbert", Genre: "SciFi",
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	resp, err := list.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, resp.Total, "报告成功的新增必须全部落盘")
}
