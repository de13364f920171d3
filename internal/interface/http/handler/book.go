package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// BookHandler 图书JSON接口处理器
type BookHandler struct {
	addBookUseCase     *appbook.AddBookUseCase
	listBooksUseCase   *appbook.ListBooksUseCase
	searchBooksUseCase *appbook.SearchBooksUseCase
	findBookUseCase    *appbook.FindBookUseCase
	updateBookUseCase  *appbook.UpdateBookUseCase
	deleteBookUseCase  *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	addBookUseCase *appbook.AddBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	searchBooksUseCase *appbook.SearchBooksUseCase,
	findBookUseCase *appbook.FindBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		addBookUseCase:     addBookUseCase,
		listBooksUseCase:   listBooksUseCase,
		searchBooksUseCase: searchBooksUseCase,
		findBookUseCase:    findBookUseCase,
		updateBookUseCase:  updateBookUseCase,
		deleteBookUseCase:  deleteBookUseCase,
	}
}

// AddBook 新增图书
// @Summary      新增图书
// @Description  新增一本图书，默认可借；编号必须唯一，四个字段都不能为空
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.AddBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse} "code=0成功；40004编号已存在；40902字段为空；40901参数格式错误"
// @Router       /api/v1/books [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	// 1. 参数绑定
	var req dto.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrBindError.Code, apperrors.ErrBindError.Message+": "+err.Error())
		return
	}

	// 2. 调用应用层用例
	result, err := h.addBookUseCase.Execute(c.Request.Context(), appbook.AddBookRequest{
		ID:     req.ID,
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 构建HTTP响应
	response.WithNotice(c, result.Notice, dto.NewBookResponse(result.Book))
}

// ListBooks 查看或搜索图书
// @Summary      图书列表
// @Description  不带q参数时返回全部图书；带q参数时按field（Title或Author）做不区分大小写的子串匹配
// @Tags         图书
// @Produce      json
// @Param        field query string false "搜索字段" Enums(Title, Author) default(Title)
// @Param        q     query string false "关键词"
// @Success      200 {object} response.Response{data=dto.ListBooksResponse} "code=0；目录为空或无结果时level=info；40900搜索字段非法"
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var req dto.SearchBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrBindError.Code, apperrors.ErrBindError.Message+": "+err.Error())
		return
	}

	// 没有搜索条件时走列表用例
	if _, searching := c.GetQuery("q"); !searching {
		result, err := h.listBooksUseCase.Execute(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.WithNotice(c, result.Notice, dto.NewListBooksResponse(result.Books))
		return
	}

	if req.Field == "" {
		req.Field = "Title"
	}

	result, err := h.searchBooksUseCase.Execute(c.Request.Context(), appbook.SearchBooksRequest{
		Field: req.Field,
		Term:  req.Query,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithNotice(c, result.Notice, dto.NewListBooksResponse(result.Books))
}

// GetBook 按编号查看图书
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书编号"
// @Success      200 {object} response.Response{data=dto.BookResponse} "code=0成功；40402图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	result, err := h.findBookUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(*result))
}

// UpdateBook 修改图书
// @Summary      修改图书
// @Description  覆盖书名、作者、类别和借阅状态；借阅状态只能是Yes或No
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id      path string                true "图书编号"
// @Param        request body dto.UpdateBookRequest true "新的图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse} "code=0成功；40402图书不存在；40900借阅状态非法；40901参数格式错误"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrBindError.Code, apperrors.ErrBindError.Message+": "+err.Error())
		return
	}

	result, err := h.updateBookUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:        c.Param("id"),
		Title:     req.Title,
		Author:    req.Author,
		Genre:     req.Genre,
		Available: req.Available,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithNotice(c, result.Notice, dto.NewBookResponse(result.Book))
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书编号"
// @Success      200 {object} response.Response "code=0成功；40402图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	n, err := h.deleteBookUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.WithNotice(c, n, nil)
}
