package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// root folder every asset of this store lives under on Cloudinary.
const cloudinaryRoot = "Jenii"

// CloudinaryUploader stores media on Cloudinary and serves it from its
// CDN. It is the default provider.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Store(ctx context.Context, data []byte, folder, filename, contentType string) (string, error) {
	publicID := strings.TrimSuffix(filename, ext(filename))
	result, err := u.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:   cloudinaryRoot + "/" + strings.Trim(folder, "/"),
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return result.SecureURL, nil
}

// Remove destroys an asset by the public id recovered from its delivery
// URL.
func (u *CloudinaryUploader) Remove(ctx context.Context, url string) error {
	publicID := publicIDFromURL(url)
	if publicID == "" {
		return fmt.Errorf("cloudinary remove: cannot derive public id from %q", url)
	}
	_, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	return nil
}

// publicIDFromURL turns a delivery URL like
// .../image/upload/v1700000000/Jenii/product/abc.jpg into
// Jenii/product/abc.
func publicIDFromURL(url string) string {
	_, after, found := strings.Cut(url, "/upload/")
	if !found {
		return ""
	}
	parts := strings.Split(after, "/")
	if len(parts) > 1 && strings.HasPrefix(parts[0], "v") {
		parts = parts[1:]
	}
	id := strings.Join(parts, "/")
	return strings.TrimSuffix(id, ext(id))
}

func ext(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}
