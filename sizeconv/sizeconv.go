// Package sizeconv converts byte counts to human-friendly sizes and
// lengths between common measurement units.
package sizeconv

import (
	"math"

	"github.com/dustin/go-humanize"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// ConvertBytes converts a byte count to the most concise named size
// using 1024-based steps: 1.1 GB rather than 1100 MB. The value is
// rounded to two decimals.
func ConvertBytes(size int64) (float64, string) {
	if size <= 0 {
		return 0, "B"
	}
	i := int(math.Floor(math.Log(float64(size)) / math.Log(1024)))
	if i >= len(byteUnits) {
		i = len(byteUnits) - 1
	}
	p := math.Pow(1024, float64(i))
	s := math.Round(float64(size)/p*100) / 100
	return s, byteUnits[i]
}

// FormatBytes renders a byte count as an IEC string ("1.1 GiB").
func FormatBytes(size uint64) string {
	return humanize.IBytes(size)
}
