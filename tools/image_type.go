package tools

import "bytes"

type ImageType string

const (
	ImageTypeJPEG    ImageType = "jpeg"
	ImageTypePNG     ImageType = "png"
	ImageTypeWEBP    ImageType = "webp"
	ImageTypeUnknown ImageType = ""
)

func (t ImageType) String() string {
	return string(t)
}

func (t ImageType) Mime() string {
	switch t {
	case ImageTypeJPEG:
		return "image/jpeg"
	case ImageTypePNG:
		return "image/png"
	case ImageTypeWEBP:
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// DetectImageType sniffs the magic bytes. Only the three encodings the
// vision API accepts are recognized.
func DetectImageType(b []byte) ImageType {
	switch {
	case bytes.HasPrefix(b, []byte{0xFF, 0xD8, 0xFF}):
		return ImageTypeJPEG
	case bytes.HasPrefix(b, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}):
		return ImageTypePNG
	case len(b) >= 12 && bytes.Equal(b[:4], []byte("RIFF")) && bytes.Equal(b[8:12], []byte("WEBP")):
		return ImageTypeWEBP
	default:
		return ImageTypeUnknown
	}
}
