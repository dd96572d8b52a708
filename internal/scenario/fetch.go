// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter/v2"
	"github.com/spf13/afero"
)

// ErrFetch is returned when a scenario file cannot be fetched.
var ErrFetch = errors.New("failed to fetch scenario file")

const (
	getterPathSeparator = "//"
	getterRefSeparator  = "?"
	minimumGetterParts  = 3 // scheme, host and path
)

// Fetch downloads a scenario file using go-getter and returns its content and file name.
// Local paths, git, http and the other go-getter sources are supported.
// Remote sources must use the "//" subdirectory syntax to name the file,
// e.g. "git::https://github.com/org/repo//scenarios/movie.yaml?ref=main".
func Fetch(ctx context.Context, url string) ([]byte, string, error) {
	if url == "" {
		return nil, "", fmt.Errorf("%w: empty url", ErrFetch)
	}

	tmpDir, err := os.MkdirTemp("", "conductor-getter-*")
	if err != nil {
		return nil, "", errors.Join(ErrFetch, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Join(ErrFetch, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	var fileName string

	// go-getter fetches directories, so remote file URLs are split into directory and file.
	if ok, err := getter.Detect(req, &getter.FileGetter{}); !ok || err != nil {
		if err != nil {
			return nil, "", errors.Join(ErrFetch, err)
		}

		var dirURL string

		dirURL, fileName = splitGetterURL(url)
		if dirURL == "" || fileName == "" {
			return nil, "", fmt.Errorf("%w: invalid url %q", ErrFetch, url)
		}

		req.Src = dirURL
	}

	if fileName == "" {
		req.Src = filepath.Dir(url)
		fileName = filepath.Base(url)
	}

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, "", errors.Join(ErrFetch, err)
	}

	data, err := afero.ReadFile(afero.NewOsFs(), filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, "", errors.Join(ErrFetch, err)
	}

	return data, fileName, nil
}

// splitGetterURL returns the getter URL of the directory holding the file, and the file name.
// A "?ref=" query is carried over to the directory URL.
func splitGetterURL(url string) (string, string) {
	var ref string

	parts := strings.Split(url, getterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]

	if before, after, found := strings.Cut(last, getterRefSeparator); found {
		ref = after
		last = before
	}

	if filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)
	dir := filepath.Dir(last)

	if dir == "." {
		parts = parts[:len(parts)-1]
	} else {
		parts[len(parts)-1] = dir
	}

	dirURL := strings.Join(parts, getterPathSeparator)
	if ref != "" {
		dirURL += getterRefSeparator + ref
	}

	return dirURL, fileName
}
