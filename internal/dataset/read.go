package dataset

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"golang.org/x/text/encoding/charmap"

	"github.com/markkmetz/scos2000/internal/mib"
)

// ReadTable reads one MIB table file into a TableFile. Ground datasets are
// ISO 8859-1, not UTF-8; the decode keeps accented characters in
// descriptions and enum labels intact.
func ReadTable(path string) (mib.TableFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return mib.TableFile{}, fmt.Errorf("cannot open table %s: %w", path, err)
	}
	defer f.Close()

	dec := charmap.ISO8859_1.NewDecoder()
	scanner := bufio.NewScanner(dec.Reader(f))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	tf := mib.TableFile{Source: path}
	for scanner.Scan() {
		tf.Lines = append(tf.Lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return mib.TableFile{}, fmt.Errorf("cannot read table %s: %w", path, err)
	}
	return tf, nil
}

// Fingerprint digests the identity of a file set (path, size, mtime) into
// a sha256 hex string. Cached index artifacts store it so a touched or
// swapped dataset invalidates the cache without re-reading file contents.
func Fingerprint(paths []string) (string, error) {
	h := sha256.New()
	for _, p := range paths {
		st, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("cannot stat %s: %w", p, err)
		}
		fmt.Fprintf(h, "%s\x00%d\x00%d\n", p, st.Size(), st.ModTime().UnixNano())
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
