package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/xiebiao/library/internal/domain/book"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// Header 存储文件表头，列顺序固定
var Header = []string{"Book ID", "Title", "Author", "Genre", "Available"}

// Codec 图书目录的CSV编解码
// 标准CSV转义：含逗号、引号或换行的字段加双引号
type Codec struct{}

// NewCodec 创建编解码器
func NewCodec() *Codec {
	return &Codec{}
}

// Encode 写出表头和全部图书
func (Codec) Encode(w io.Writer, catalog book.Catalog) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, b := range catalog {
		record := []string{b.ID, b.Title, b.Author, b.Genre, b.Available.String()}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Decode 读取表头和全部图书
// 所有字段按文本读取，Available原样保留
func (Codec) Decode(r io.Reader) (book.Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, apperrors.WrapCode(errors.New("缺少表头"), apperrors.ErrCodeStoreSchema, apperrors.ErrStoreSchema.Message)
	}
	if err != nil {
		return nil, schemaOrIO(err)
	}
	header[0] = trimBOM(header[0])
	if !slices.Equal(header, Header) {
		return nil, apperrors.WrapCode(fmt.Errorf("表头为%q", header), apperrors.ErrCodeStoreSchema, apperrors.ErrStoreSchema.Message)
	}

	catalog := book.Catalog{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, schemaOrIO(err)
		}
		catalog = append(catalog, book.Book{
			ID:        record[0],
			Title:     record[1],
			Author:    record[2],
			Genre:     record[3],
			Available: book.Availability(record[4]),
		})
	}
	return catalog, nil
}

// schemaOrIO 区分CSV格式错误和底层读取错误
func schemaOrIO(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return apperrors.WrapCode(err, apperrors.ErrCodeStoreSchema, apperrors.ErrStoreSchema.Message)
	}
	return apperrors.WrapCode(err, apperrors.ErrCodeStoreIO, apperrors.ErrStoreIO.Message)
}

// trimBOM 去掉表格软件导出时带的UTF-8 BOM
func trimBOM(s string) string {
	if len(s) >= 3 && s[:3] == "\xef\xbb\xbf" {
		return s[3:]
	}
	return s
}
