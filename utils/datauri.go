package utils

import (
	"encoding/base64"
	"net/http"
)

// EncodeDataURL renders raw bytes as a data URL. When contentType is empty
// it is sniffed from the payload.
func EncodeDataURL(contentType string, data []byte) string {
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
