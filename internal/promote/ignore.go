package promote

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const (
	ignoreFileMissingMessageConstant  = "ignore file not found"
	ignoreFileReadFailureTemplate     = "unable to read ignore file %s: %w"
	ignoreFileCommentPrefixConstant   = "#"
	ignoreFileMissingTemplateConstant = "%w: %s"
)

// ErrIgnoreFileMissing indicates the configured ignore file does not exist.
var ErrIgnoreFileMissing = errors.New(ignoreFileMissingMessageConstant)

// LoadIgnoreList reads the ignore file and returns its path entries in order.
// Blank lines and lines starting with "#" are skipped; surrounding whitespace
// is trimmed from every entry.
func LoadIgnoreList(ignoreFilePath string) ([]string, error) {
	fileContents, readError := os.ReadFile(ignoreFilePath)
	if readError != nil {
		if errors.Is(readError, fs.ErrNotExist) {
			return nil, fmt.Errorf(ignoreFileMissingTemplateConstant, ErrIgnoreFileMissing, ignoreFilePath)
		}
		return nil, fmt.Errorf(ignoreFileReadFailureTemplate, ignoreFilePath, readError)
	}

	ignoreEntries := make([]string, 0)
	for _, rawLine := range strings.Split(string(fileContents), "\n") {
		trimmedLine := strings.TrimSpace(rawLine)
		if len(trimmedLine) == 0 {
			continue
		}
		if strings.HasPrefix(trimmedLine, ignoreFileCommentPrefixConstant) {
			continue
		}
		ignoreEntries = append(ignoreEntries, trimmedLine)
	}
	return ignoreEntries, nil
}
