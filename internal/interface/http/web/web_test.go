package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"add.html", "list.html", "search.html", "update.html", "delete.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "list.html", map[string]interface{}{
		"Title":  "查看全部图书",
		"Active": "list",
		"Notice": map[string]string{"Level": "info", "Message": "图书馆中暂无图书"},
		"Books":  nil,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `class="notice notice-info"`)
	assert.NotContains(t, buf.String(), "<table>")
}
