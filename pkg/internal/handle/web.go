package handle

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexPage []byte

// testUploadForm 手动测试用的最小上传表单.
const testUploadForm = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <title>Upload Test Form</title>
  </head>
  <body>
    <h2>File Analyse Test</h2>
    <form action="/api/fileanalyse" method="POST" enctype="multipart/form-data">
      <input type="file" name="upfile" required />
      <button type="submit">Analyse</button>
    </form>
  </body>
</html>
`

// Index 返回内嵌的前端页面.
//
//	@Summary		前端页面
//	@Description	返回静态前端页面
//	@Tags			页面
//	@Produce		html
//	@Success		200	{string}	string	"HTML 页面"
//	@Router			/ [get]
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}

// TestUploadForm 返回手动测试用的上传表单.
//
//	@Summary		测试上传表单
//	@Description	返回一个最小的 HTML 表单，向 /api/fileanalyse 提交文件
//	@Tags			页面
//	@Produce		html
//	@Success		200	{string}	string	"HTML 表单"
//	@Router			/api/test-upload-form [get]
func TestUploadForm(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(testUploadForm))
}
