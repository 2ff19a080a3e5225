// Package report writes the HTML artifacts of a group: the interactive
// dashboard and the top performer map.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var fileLabelRe = regexp.MustCompile(`[^A-Za-z0-9]+`)

// FileLabel turns a group label into a file name fragment:
// "Staten Island" -> "Staten_Island".
func FileLabel(label string) string {
	ascii := unidecode.Unidecode(label)
	return strings.Trim(fileLabelRe.ReplaceAllString(ascii, "_"), "_")
}

// MapPath is output/ny_top_performers_<label>.html under outputDir.
func MapPath(outputDir, label string) string {
	return filepath.Join(outputDir, fmt.Sprintf("ny_top_performers_%s.html", FileLabel(label)))
}

func DashboardPath(outputDir, label string) string {
	return filepath.Join(outputDir, fmt.Sprintf("ny_dashboard_%s.html", FileLabel(label)))
}

// WriteArtifact writes data to path, creating parent directories. The file
// is fully written and closed before it returns.
func WriteArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
