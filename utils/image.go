package utils

import (
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
)

// DecodeDataURL splits a "data:<mime>;base64,<data>" payload into raw
// bytes, content type and a file extension for the content type.
func DecodeDataURL(dataURL string) ([]byte, string, string, error) {
	parts := strings.Split(dataURL, ",")
	if len(parts) != 2 {
		return nil, "", "", fmt.Errorf("invalid base64 image")
	}
	meta := parts[0]
	data := parts[1]

	if !strings.HasPrefix(meta, "data:") {
		return nil, "", "", fmt.Errorf("invalid base64 image")
	}
	mediaType := strings.TrimPrefix(meta, "data:")       // "image/jpeg;base64"
	contentType := strings.SplitN(mediaType, ";", 2)[0] // "image/jpeg"

	var ext string
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	default:
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		} else if sub := strings.SplitN(contentType, "/", 2); len(sub) == 2 {
			ext = "." + sub[1]
		}
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to decode image: %v", err)
	}
	return raw, contentType, ext, nil
}
