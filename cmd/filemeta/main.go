// Package main 启动应用程序
package main

import "github.com/vhctruc/freecodecamp-file-metadata-microservice/pkg/cmd"

//	@title			File Metadata Microservice API
//	@version		1.0
//	@description	接收单个上传文件并以 JSON 返回其文件名、MIME 类型和字节大小，不存储文件内容。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
