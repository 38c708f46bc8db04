//go:build e2e && unix

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
)

// fakePhoto is the subset of the search response the app reads
type fakePhoto struct {
	ID           int64             `json:"id"`
	Width        int               `json:"width"`
	Height       int               `json:"height"`
	Photographer string            `json:"photographer"`
	AvgColor     string            `json:"avg_color"`
	Alt          string            `json:"alt"`
	Src          map[string]string `json:"src"`
}

// FakePexels serves search results and solid-color PNGs
type FakePexels struct {
	*httptest.Server
	results  map[string]int // topic -> number of photos
	searches atomic.Int32
}

// NewFakePexels starts a server answering topics with the given photo counts.
// Unknown topics get an empty photos list.
func NewFakePexels(results map[string]int) *FakePexels {
	f := &FakePexels{results: results}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/search", f.search)
	mux.HandleFunc("/img/", f.image)
	f.Server = httptest.NewServer(mux)
	return f
}

func (f *FakePexels) search(w http.ResponseWriter, r *http.Request) {
	f.searches.Add(1)
	if r.Header.Get("Authorization") != "e2e-key" {
		http.Error(w, "bad key", http.StatusUnauthorized)
		return
	}
	topic := r.URL.Query().Get("query")
	photos := make([]fakePhoto, 0)
	for i := 1; i <= f.results[topic]; i++ {
		photos = append(photos, fakePhoto{
			ID:           int64(i),
			Width:        400,
			Height:       600,
			Photographer: fmt.Sprintf("Photographer %d", i),
			AvgColor:     "#7F4F2F",
			Alt:          fmt.Sprintf("%s number %d", topic, i),
			Src:          map[string]string{"portrait": fmt.Sprintf("%s/img/%d.png", f.URL, i)},
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"page": 1, "photos": photos})
}

func (f *FakePexels) image(w http.ResponseWriter, r *http.Request) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 60))
	shade := uint8(len(strings.TrimPrefix(r.URL.Path, "/img/")) * 20)
	for y := 0; y < 60; y++ {
		for x := 0; x < 40; x++ {
			img.SetRGBA(x, y, color.RGBA{R: shade, G: 120, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(buf.Bytes())
}

// CreateTestWorkspace creates a temporary directory used as $HOME and cwd
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteConfig writes a config file pointing at endpoint and returns its path
func (tf *TUITestFramework) WriteConfig(endpoint, apiKey string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, "config.toml")
	content := fmt.Sprintf(`api_key = %q
endpoint = %q
request_timeout = "5s"

[ui]
thumbnail_size = 8
spacing = 1
mouse = false
`, apiKey, endpoint+"/v1/search")
	return path, os.WriteFile(path, []byte(content), 0o600)
}
