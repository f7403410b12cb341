package dataset

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/zerr"
)

func checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// fingerprint combines the per-category checksums in a fixed category order.
// Categories that failed to load contribute their name only.
func fingerprint(sums map[domain.Category]uint64) uint64 {
	hasher := xxhash.New()
	var buf [8]byte
	for _, category := range domain.DatasetCategories() {
		_, _ = hasher.WriteString(string(category))
		_, _ = hasher.Write([]byte{0}) // Separator
		if sum, ok := sums[category]; ok {
			binary.LittleEndian.PutUint64(buf[:], sum)
			_, _ = hasher.Write(buf[:])
		}
		_, _ = hasher.Write([]byte{0})
	}
	return hasher.Sum64()
}

// FormatFingerprint renders a catalog fingerprint as a strong HTTP entity tag.
func FormatFingerprint(sum uint64) string {
	return fmt.Sprintf("%q", fmt.Sprintf("%016x", sum))
}

// HashFile computes the XXHash of a file's content.
func HashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return hasher.Sum64(), nil
}
