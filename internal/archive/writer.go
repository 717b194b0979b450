package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ulikunitz/xz"
)

// snapshotTime is the fixed modification time of every snapshot entry, so two
// snapshots of the same corpus are byte-identical.
var snapshotTime = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// SnapshotTarXz writes the files names (relative to dir) into a tar.xz archive
// at dstPath and returns the number of uncompressed bytes stored.
// Parent directories of dstPath are created.
func SnapshotTarXz(dir string, names []string, dstPath string) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return 0, fmt.Errorf("failed to create parent directory: %w", err)
	}

	outFile, err := os.Create(dstPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create archive file: %w", err)
	}
	defer outFile.Close()

	xw, err := xz.NewWriter(outFile)
	if err != nil {
		return 0, fmt.Errorf("failed to create xz writer: %w", err)
	}

	tw := tar.NewWriter(xw)

	var total int64
	for _, name := range names {
		n, err := addFile(tw, dir, name)
		if err != nil {
			return total, fmt.Errorf("failed to add %s: %w", name, err)
		}
		total += n
	}

	if err := tw.Close(); err != nil {
		return total, fmt.Errorf("failed to finish tar stream: %w", err)
	}
	if err := xw.Close(); err != nil {
		return total, fmt.Errorf("failed to finish xz stream: %w", err)
	}
	return total, outFile.Close()
}

func addFile(tw *tar.Writer, dir, name string) (int64, error) {
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("not a regular file")
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return 0, err
	}
	header.Name = filepath.ToSlash(name)
	// Normalize timestamps and ownership for reproducibility
	header.ModTime = snapshotTime
	header.AccessTime = time.Time{}
	header.ChangeTime = time.Time{}
	header.Uid, header.Gid = 0, 0
	header.Uname, header.Gname = "", ""
	header.Format = tar.FormatPAX

	if err := tw.WriteHeader(header); err != nil {
		return 0, err
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return io.Copy(tw, file)
}
