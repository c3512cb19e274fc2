package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeBase64Image разбирает data-URI вида
// "data:image/png;base64,AAAA..." и возвращает расширение файла и байты.
func DecodeBase64Image(data string) (ext string, raw []byte, err error) {
	const prefix = "data:image/"

	if !strings.HasPrefix(data, prefix) {
		return "", nil, fmt.Errorf("not a data-uri image")
	}

	rest := strings.TrimPrefix(data, prefix)
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, fmt.Errorf("missing base64 payload")
	}

	ext = rest[:sep]
	if ext == "jpeg" {
		ext = "jpg"
	}

	raw, err = base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return "", nil, fmt.Errorf("decode image: %w", err)
	}

	return ext, raw, nil
}
