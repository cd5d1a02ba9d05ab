package storage

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// UploadDir is where listing/ad images land; files under it are served at
// /uploads. Overridable via UPLOAD_DIR (and by tests).
var UploadDir = "./public/uploads"

// MaxImagesPerPost caps a single listing or ad submission.
const MaxImagesPerPost = 5

func InitializeUploads() {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		UploadDir = dir
	}
	if err := os.MkdirAll(UploadDir, 0o755); err != nil {
		log.Panic("error creating upload dir: " + err.Error())
	}
}

// SaveImages persists up to MaxImagesPerPost files and returns their public
// /uploads paths in submission order.
func SaveImages(files []*multipart.FileHeader) ([]string, error) {
	if len(files) > MaxImagesPerPost {
		files = files[:MaxImagesPerPost]
	}

	paths := make([]string, 0, len(files))
	for _, fh := range files {
		name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(fh.Filename))

		src, err := fh.Open()
		if err != nil {
			return paths, err
		}

		dst, err := os.Create(filepath.Join(UploadDir, name))
		if err != nil {
			src.Close()
			return paths, err
		}

		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()
		if err != nil {
			return paths, err
		}

		paths = append(paths, "/uploads/"+name)
	}
	return paths, nil
}

// sanitizeFilename strips any client-supplied directory components and
// anything outside a conservative character set.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" || out == "." || out == ".." {
		out = "upload"
	}
	return out
}
