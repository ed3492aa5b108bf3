package mastodon

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// FormFile marks an argument as a file part in a multipart request, eg a
// media attachment upload.
type FormFile struct {
	// Name is the filename reported in the part header.
	Name string
	Data io.Reader
}

// encodeMultipart renders an argument mapping as a multipart/form-data body.
// Scalar values are stringified fields, []string values repeat the field,
// and FormFile values become file parts.
func encodeMultipart(args map[string]any) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range args {
		switch f := v.(type) {
		case FormFile:
			part, err := w.CreateFormFile(k, f.Name)
			if err != nil {
				return nil, "", err
			}
			if _, err := io.Copy(part, f.Data); err != nil {
				return nil, "", err
			}
		case []string:
			for _, e := range f {
				if err := w.WriteField(k, e); err != nil {
					return nil, "", err
				}
			}
		default:
			if err := w.WriteField(k, fmt.Sprint(f)); err != nil {
				return nil, "", err
			}
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
