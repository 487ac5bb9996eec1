package deck

import (
	"bufio"
	"fmt"
	"os"
)

// readHead returns at most maxLines from the start of the file at path,
// and whether the file had more lines than that.
func readHead(path string, maxLines int) ([]string, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("open body: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		if maxLines > 0 && len(lines) == maxLines {
			return lines, true, nil
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, false, fmt.Errorf("read body: %w", err)
	}
	return lines, false, nil
}
