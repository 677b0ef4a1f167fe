package catalog

import (
	"io"
	"mime/multipart"
)

// FileFromHeader reads one multipart file into memory.
func FileFromHeader(fh *multipart.FileHeader) (FileUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return FileUpload{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return FileUpload{}, err
	}
	return FileUpload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
