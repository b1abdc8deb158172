package rpmpkg

import (
	"path"
	"strings"
)

// fileStats accumulates the per-file statistics the header section's array
// tags are built from, in the same order the CPIO entries are emitted.
type fileStats struct {
	baseNames      []string
	dirNames       []string
	dirIndexes     []int32
	fileUserNames  []string
	fileGroupNames []string
	fileSizes      []int32
	fileModes      []int16
	fileInodes     []int32
	fileDevices    []int32
	fileRDevs      []int16
	fileMTimes     []int32
	fileLangs      []string
	fileLinkTos    []string
	fileFlags      []int32
	fileDigests    []string
	fileColors     []int32

	totalSize int64
}

const (
	fileFlagNone    int32 = 0
	fileFlagRegular int32 = 1 << 4
)

func (fs *fileStats) add(baseName, dirName string, size int64, mode int16, mtime int32,
	linkTo, digest string, flags int32) {
	fs.baseNames = append(fs.baseNames, baseName)
	fs.dirIndexes = append(fs.dirIndexes, int32(fs.dirIndex(dirName)))
	fs.fileUserNames = append(fs.fileUserNames, "root")
	fs.fileGroupNames = append(fs.fileGroupNames, "root")
	fs.fileSizes = append(fs.fileSizes, int32(size))
	fs.fileModes = append(fs.fileModes, mode)
	fs.fileInodes = append(fs.fileInodes, int32(len(fs.baseNames)))
	fs.fileDevices = append(fs.fileDevices, 1)
	fs.fileRDevs = append(fs.fileRDevs, 0)
	fs.fileMTimes = append(fs.fileMTimes, mtime)
	fs.fileLangs = append(fs.fileLangs, "")
	fs.fileLinkTos = append(fs.fileLinkTos, linkTo)
	fs.fileFlags = append(fs.fileFlags, flags)
	fs.fileDigests = append(fs.fileDigests, digest)
	fs.fileColors = append(fs.fileColors, 0)
	fs.totalSize += size
}

// dirIndex returns dirName's index in dirNames, appending it if this is the
// first file seen in that directory.
func (fs *fileStats) dirIndex(dirName string) int {
	for i, d := range fs.dirNames {
		if d == dirName {
			return i
		}
	}
	fs.dirNames = append(fs.dirNames, dirName)
	return len(fs.dirNames) - 1
}

// dirNameFor renders relPath's containing directory in the "./a/b/" form
// the header section's DIRNAMES array uses.
func dirNameFor(relPath string) string {
	dir := path.Dir(relPath)
	if dir == "." || dir == "/" {
		return "./"
	}
	return "./" + strings.TrimPrefix(dir, "/") + "/"
}

// cpioNameFor renders relPath as the "./a/b/c" form CPIO entry names use.
func cpioNameFor(relPath string) string {
	return "./" + strings.TrimPrefix(relPath, "/")
}

// baseNameFor returns relPath's final path component, the BASENAMES entry.
func baseNameFor(relPath string) string {
	return path.Base(relPath)
}
