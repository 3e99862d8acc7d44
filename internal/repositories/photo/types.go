package photo

import "mime"

// RasterTypes maps the accepted photo extensions to their content types
var RasterTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"heic": "image/heic",
	"heif": "image/heif",
}

// RasterMediaType returns the bare media type of contentType when it is one
// of RasterTypes
func RasterMediaType(contentType string) (string, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	for _, allowed := range RasterTypes {
		if mediaType == allowed {
			return mediaType, true
		}
	}
	return "", false
}

// UploadInput contains the object to store
type UploadInput struct {
	Bucket      string
	Key         string
	Data        []byte
	ContentType string
}

// GetInput identifies an object
type GetInput struct {
	Bucket string
	Key    string
}

// GetOutput contains a stored object
type GetOutput struct {
	Data        []byte
	ContentType string
}
