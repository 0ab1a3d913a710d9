// Package archive relocates processed input files.
package archive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"
)

// Move relocates src into dir, preserving its base name. On a name collision
// a timestamp suffix is appended before the extension rather than
// overwriting. Returns the destination path.
func Move(src, dir string, now time.Time) (string, error) {
	base := filepath.Base(src)
	dst := filepath.Join(dir, base)

	if _, err := os.Stat(dst); err == nil {
		ext := filepath.Ext(base)
		stem := strings.TrimSuffix(base, ext)
		dst = filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, now.Format("20060102_150405"), ext))
	}

	if err := rename(src, dst); err != nil {
		return "", fmt.Errorf("archive %s: %w", src, err)
	}
	return dst, nil
}

// rename moves the file, falling back to copy+remove only when the archive
// directory sits on another filesystem.
func rename(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}
	return copyFile(src, dst)
}

// copyFile copies src to dst and removes src. A failed copy never leaves a
// partial destination behind.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return os.Remove(src)
}
