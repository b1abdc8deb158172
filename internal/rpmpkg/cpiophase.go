package rpmpkg

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/gorpm/rpmpack/internal/cpio"
	"github.com/gorpm/rpmpack/internal/fssource"
)

func readAllAndClose(r io.ReadCloser) ([]byte, error) {
	defer r.Close()
	return io.ReadAll(r)
}

// buildCPIO emits entries, sorted by path, as a newc CPIO archive and
// returns its bytes alongside the per-file statistics the header section is
// built from. digestAlgo selects the per-file FILEDIGESTS algorithm, so the
// values recorded here match what FILEDIGESTALGO will claim.
func buildCPIO(entries []fssource.Entry, digestAlgo int32) ([]byte, fileStats, error) {
	var buf bytes.Buffer
	w := cpio.NewWriter(&buf)
	var stats fileStats

	entries = append([]fssource.Entry(nil), entries...)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	for _, e := range entries {
		size := e.Size
		var payload []byte
		var fileDigest string
		flags := fileFlagNone

		switch {
		case e.IsDir():
			size = 0
		case e.IsSymlink():
			payload = []byte(e.LinkTarget)
			size = int64(len(payload))
		default:
			flags = fileFlagRegular
			if e.Open == nil {
				return nil, fileStats{}, fmt.Errorf("rpmpkg: entry %q has no content reader", e.Path)
			}
			r, err := e.Open()
			if err != nil {
				return nil, fileStats{}, fmt.Errorf("%w: opening %q: %s", ErrIO, e.Path, err)
			}
			content, err := readAllAndClose(r)
			if err != nil {
				return nil, fileStats{}, fmt.Errorf("%w: reading %q: %s", ErrIO, e.Path, err)
			}
			payload = content
			size = int64(len(content))
			fileDigest = fileDigestHex(digestAlgo, content)
		}

		name := cpioNameFor(e.Path)
		if err := w.WriteHeader(&cpio.Entry{
			Name:  name,
			Mode:  e.Mode,
			UID:   0,
			GID:   0,
			NLink: 1,
			Mtime: uint32(e.MTime.Unix()),
			Size:  uint32(size),
		}); err != nil {
			return nil, fileStats{}, fmt.Errorf("%w: writing cpio header for %q: %s", ErrIO, e.Path, err)
		}
		if len(payload) > 0 {
			if _, err := w.Write(payload); err != nil {
				return nil, fileStats{}, fmt.Errorf("%w: writing cpio payload for %q: %s", ErrIO, e.Path, err)
			}
		}

		stats.add(
			baseNameFor(e.Path), dirNameFor(e.Path), size,
			int16(e.Mode), int32(e.MTime.Unix()), e.LinkTarget, fileDigest, flags,
		)
		stats.fileUserNames[len(stats.fileUserNames)-1] = orDefault(e.UserName, "root")
		stats.fileGroupNames[len(stats.fileGroupNames)-1] = orDefault(e.GroupName, "root")
	}

	if err := w.WriteTrailer(); err != nil {
		return nil, fileStats{}, fmt.Errorf("%w: writing cpio trailer: %s", ErrIO, err)
	}

	return buf.Bytes(), stats, nil
}
