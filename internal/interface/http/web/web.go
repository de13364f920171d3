// Package web 内嵌HTML页面模板
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates 解析全部页面模板
// 每个页面模板以文件名命名（如add.html），公共片段定义在layout.html中
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
