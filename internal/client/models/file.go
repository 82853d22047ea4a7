package models

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// File is an attachment held in memory: a picked local file, a cropped
// rendition or an object fetched from the media store.
type File struct {
	Name     string
	MIMEType string
	Data     []byte
}

func (f *File) IsImage() bool {
	return f != nil && strings.HasPrefix(f.MIMEType, "image/")
}

// DataURL encodes f as "data:<mime>;base64,<payload>".
func (f *File) DataURL() string {
	mt := f.MIMEType
	if mt == "" {
		mt = "application/octet-stream"
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}

// DetectMIMEType guesses a MIME type from the file extension, falling back
// to content sniffing.
func DetectMIMEType(name string, data []byte) string {
	if mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); mt != "" {
		mt, _, _ = strings.Cut(mt, ";")
		return mt
	}
	mt, _, _ := strings.Cut(http.DetectContentType(data), ";")
	return mt
}

// ReadFile loads a local file as an attachment.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	name := filepath.Base(path)
	return &File{Name: name, MIMEType: DetectMIMEType(name, data), Data: data}, nil
}
