package salesforce

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/utils/safe"
)

// maxZipEntrySize limits a single extracted file
const maxZipEntrySize = 256 << 20

func extractZip(ctx context.Context, data []byte, dst string) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return goerr.Wrap(types.ErrInvalidSalesforceData, "failed to open zip", goerr.V("cause", err.Error()))
	}

	if err := os.MkdirAll(dst, 0750); err != nil {
		return goerr.Wrap(err, "failed to create target directory", goerr.V("path", dst))
	}

	for _, f := range zr.File {
		if err := extractEntry(ctx, f, dst); err != nil {
			return err
		}
	}

	return nil
}

func extractEntry(ctx context.Context, f *zip.File, dst string) error {
	if f.FileInfo().IsDir() {
		return nil
	}

	target, err := sanitizeZipPath(f.Name)
	if err != nil {
		return err
	}
	if target == "" {
		return nil
	}

	fpath := filepath.Join(dst, target)
	if !strings.HasPrefix(fpath, filepath.Clean(dst)+string(os.PathSeparator)) {
		return goerr.Wrap(types.ErrInvalidSalesforceData, "illegal file path of zip", goerr.V("path", fpath))
	}

	if err := os.MkdirAll(filepath.Dir(fpath), 0750); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("path", fpath))
	}

	out, err := os.OpenFile(filepath.Clean(fpath), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return goerr.Wrap(err, "failed to open file", goerr.V("fpath", fpath))
	}
	defer safe.Close(ctx, out)

	rc, err := f.Open()
	if err != nil {
		return goerr.Wrap(err, "failed to open zip entry")
	}
	defer safe.Close(ctx, rc)

	n, err := io.Copy(out, io.LimitReader(rc, maxZipEntrySize+1))
	if err != nil {
		return goerr.Wrap(err, "failed to copy file content")
	}
	if n > maxZipEntrySize {
		return goerr.Wrap(types.ErrInvalidSalesforceData, "zip entry too large", goerr.V("path", f.Name))
	}

	return nil
}

// sanitizeZipPath normalizes a zip entry name into a relative path. A
// leading "unpackaged/" directory is dropped and any ".." segment is
// rejected.
func sanitizeZipPath(name string) (string, error) {
	normalized := strings.ReplaceAll(name, "\\", "/")
	normalized = strings.TrimLeft(normalized, "/")
	normalized = strings.TrimPrefix(normalized, "unpackaged/")

	var parts []string
	for _, part := range strings.Split(normalized, "/") {
		if part == "" || part == "." {
			continue
		}
		if part == ".." {
			return "", goerr.Wrap(types.ErrInvalidSalesforceData, "illegal file path of zip", goerr.V("path", name))
		}
		parts = append(parts, part)
	}

	return filepath.Join(parts...), nil
}
