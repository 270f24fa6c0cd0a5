package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyDir recursively copies the contents of src into dst. Directories are
// recreated and regular files copied with their permission bits. It
// returns the number of files copied.
func CopyDir(src, dst string) (int, error) {
	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", src, err)
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return 0, fmt.Errorf("creating directory %s: %w", dst, err)
	}

	copied := 0
	for _, e := range entries {
		from := filepath.Join(src, e.Name())
		to := filepath.Join(dst, e.Name())
		switch {
		case e.IsDir():
			n, err := CopyDir(from, to)
			copied += n
			if err != nil {
				return copied, err
			}
		case e.Type().IsRegular():
			if err := copyFile(from, to); err != nil {
				return copied, err
			}
			copied++
		}
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}
