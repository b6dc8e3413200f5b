package charset

import "os"

// ReadCorpus reads every corpus file into memory. Any unreadable path is a
// fatal configuration error naming the path; decode errors inside a readable
// file are handled leniently later, in BuildTarget.
func ReadCorpus(paths []string) ([][]byte, error) {
	texts := make([][]byte, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &CorpusReadError{Path: path, Cause: err}
		}
		texts = append(texts, data)
	}
	return texts, nil
}
