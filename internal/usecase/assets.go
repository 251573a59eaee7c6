package usecase

import (
	"encoding/base64"
	"strings"

	"petpal/pkg/errors"
)

// decodeImagePayload accepts the base64 image payload the web client
// sends, either a data URI ("data:image/png;base64,...") or bare base64,
// and returns the content type plus raw bytes.
func decodeImagePayload(payload string) (string, []byte, error) {
	contentType := "image/jpeg"
	encoded := payload

	if strings.HasPrefix(payload, "data:") {
		header, rest, found := strings.Cut(payload, ",")
		if !found {
			return "", nil, errors.BadRequest("Malformed image data", nil)
		}
		encoded = rest

		header = strings.TrimPrefix(header, "data:")
		if mediaType, _, _ := strings.Cut(header, ";"); mediaType != "" {
			contentType = mediaType
		}
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, errors.BadRequest("Image data is not valid base64", err)
	}
	if len(data) == 0 {
		return "", nil, errors.BadRequest("Image data is empty", nil)
	}

	return contentType, data, nil
}
