package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/notice"
)

// ExportFilename 导出文件名
const ExportFilename = "library_books.csv"

// pageData 页面模板数据
type pageData struct {
	Title  string
	Active string // 侧边栏当前菜单
	Notice notice.Notice
	Books  []appbook.BookItem
	Book   appbook.BookItem // 表单回填
	Field  string
	Query  string
	Found  bool // 修改页：是否已查到图书
	Empty  bool // 目录为空时不显示表单
}

// PageHandler HTML表单页面处理器
// 侧边栏菜单：新增 / 查看全部 / 搜索 / 修改 / 删除
// 每个页面都只渲染用例返回的Notice，不自行判断错误类型
type PageHandler struct {
	addBookUseCase     *appbook.AddBookUseCase
	listBooksUseCase   *appbook.ListBooksUseCase
	searchBooksUseCase *appbook.SearchBooksUseCase
	findBookUseCase    *appbook.FindBookUseCase
	updateBookUseCase  *appbook.UpdateBookUseCase
	deleteBookUseCase  *appbook.DeleteBookUseCase
	exportBooksUseCase *appbook.ExportBooksUseCase
}

// NewPageHandler 创建页面处理器
func NewPageHandler(
	addBookUseCase *appbook.AddBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	searchBooksUseCase *appbook.SearchBooksUseCase,
	findBookUseCase *appbook.FindBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
	exportBooksUseCase *appbook.ExportBooksUseCase,
) *PageHandler {
	return &PageHandler{
		addBookUseCase:     addBookUseCase,
		listBooksUseCase:   listBooksUseCase,
		searchBooksUseCase: searchBooksUseCase,
		findBookUseCase:    findBookUseCase,
		updateBookUseCase:  updateBookUseCase,
		deleteBookUseCase:  deleteBookUseCase,
		exportBooksUseCase: exportBooksUseCase,
	}
}

// AddForm 新增图书表单
func (h *PageHandler) AddForm(c *gin.Context) {
	h.render(c, "add.html", pageData{Title: "新增图书", Active: "add"})
}

// AddBook 提交新增表单
// 成功后清空表单，失败时保留已填写的内容
func (h *PageHandler) AddBook(c *gin.Context) {
	data := pageData{Title: "新增图书", Active: "add"}

	var req dto.AddBookRequest
	if err := c.ShouldBind(&req); err != nil {
		h.fail(c, "add.html", data, apperrors.ErrBindError.WithErr(err))
		return
	}
	data.Book = appbook.BookItem{ID: req.ID, Title: req.Title, Author: req.Author, Genre: req.Genre}

	result, err := h.addBookUseCase.Execute(c.Request.Context(), appbook.AddBookRequest{
		ID:     req.ID,
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
	})
	if err != nil {
		h.fail(c, "add.html", data, err)
		return
	}

	data.Book = appbook.BookItem{}
	data.Notice = result.Notice
	h.render(c, "add.html", data)
}

// ListBooks 查看全部图书
func (h *PageHandler) ListBooks(c *gin.Context) {
	data := pageData{Title: "查看全部图书", Active: "list"}

	result, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		h.fail(c, "list.html", data, err)
		return
	}

	data.Books = result.Books
	data.Notice = result.Notice
	h.render(c, "list.html", data)
}

// SearchBooks 搜索图书
// 没有提交搜索条件时只显示表单
func (h *PageHandler) SearchBooks(c *gin.Context) {
	data := pageData{Title: "搜索图书", Active: "search", Field: "Title"}

	var req dto.SearchBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.fail(c, "search.html", data, apperrors.ErrBindError.WithErr(err))
		return
	}
	if req.Field != "" {
		data.Field = req.Field
	}
	data.Query = req.Query

	if _, submitted := c.GetQuery("q"); !submitted {
		h.render(c, "search.html", data)
		return
	}

	result, err := h.searchBooksUseCase.Execute(c.Request.Context(), appbook.SearchBooksRequest{
		Field: data.Field,
		Term:  data.Query,
	})
	if err != nil {
		h.fail(c, "search.html", data, err)
		return
	}

	data.Field = result.Field
	data.Books = result.Books
	data.Notice = result.Notice
	h.render(c, "search.html", data)
}

// UpdateForm 修改图书第一步：按编号查找并回填表单
func (h *PageHandler) UpdateForm(c *gin.Context) {
	data := pageData{Title: "修改图书", Active: "update"}

	if h.showEmpty(c, "update.html", data) {
		return
	}

	id, lookup := c.GetQuery("id")
	if !lookup {
		h.render(c, "update.html", data)
		return
	}
	data.Book.ID = id

	result, err := h.findBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "update.html", data, err)
		return
	}

	data.Book = *result
	data.Found = true
	h.render(c, "update.html", data)
}

// UpdateBook 修改图书第二步：提交新值
// 两步之间不保存状态，图书是否存在由领域层重新校验
func (h *PageHandler) UpdateBook(c *gin.Context) {
	data := pageData{Title: "修改图书", Active: "update"}

	var req dto.UpdateBookRequest
	if err := c.ShouldBind(&req); err != nil {
		h.fail(c, "update.html", data, apperrors.ErrBindError.WithErr(err))
		return
	}
	data.Book = appbook.BookItem{ID: req.ID, Title: req.Title, Author: req.Author, Genre: req.Genre, Available: req.Available}

	result, err := h.updateBookUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:        req.ID,
		Title:     req.Title,
		Author:    req.Author,
		Genre:     req.Genre,
		Available: req.Available,
	})
	if err != nil {
		// 图书仍存在时保留表单，便于改正借阅状态后重新提交
		data.Found = !errors.Is(err, apperrors.ErrBookNotFound)
		h.fail(c, "update.html", data, err)
		return
	}

	data.Book = result.Book
	data.Found = true
	data.Notice = result.Notice
	h.render(c, "update.html", data)
}

// DeleteForm 删除图书表单
func (h *PageHandler) DeleteForm(c *gin.Context) {
	data := pageData{Title: "删除图书", Active: "delete"}

	if h.showEmpty(c, "delete.html", data) {
		return
	}
	h.render(c, "delete.html", data)
}

// DeleteBook 提交删除表单
func (h *PageHandler) DeleteBook(c *gin.Context) {
	data := pageData{Title: "删除图书", Active: "delete"}

	var req dto.DeleteBookRequest
	if err := c.ShouldBind(&req); err != nil {
		h.fail(c, "delete.html", data, apperrors.ErrBindError.WithErr(err))
		return
	}

	n, err := h.deleteBookUseCase.Execute(c.Request.Context(), req.ID)
	if err != nil {
		data.Book.ID = req.ID
		h.fail(c, "delete.html", data, err)
		return
	}

	data.Notice = n
	h.render(c, "delete.html", data)
}

// ExportBooks 下载CSV格式的全部图书
func (h *PageHandler) ExportBooks(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportBooksUseCase.Execute(c.Request.Context(), &buf); err != nil {
		h.fail(c, "list.html", pageData{Title: "查看全部图书", Active: "list"}, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// =========================================
// 辅助函数
// =========================================

// showEmpty 目录为空时渲染info提示并返回true
// 修改、删除页面打开前先检查，避免操作员输入编号后才看到"图书不存在"
func (h *PageHandler) showEmpty(c *gin.Context, name string, data pageData) bool {
	result, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		h.fail(c, name, data, err)
		return true
	}
	if result.Notice.IsZero() {
		return false
	}

	data.Empty = true
	data.Notice = result.Notice
	h.render(c, name, data)
	return true
}

func (h *PageHandler) render(c *gin.Context, name string, data pageData) {
	c.HTML(http.StatusOK, name, data)
}

// fail 渲染失败提示
// 服务端错误返回500，其余（业务规则、参数错误）仍返回200并在页面上提示
func (h *PageHandler) fail(c *gin.Context, name string, data pageData, err error) {
	_ = c.Error(err)

	status := http.StatusOK
	if apperrors.IsServerError(err) {
		status = http.StatusInternalServerError
	}

	data.Notice = notice.FromError(err)
	c.HTML(status, name, data)
}
