package selector

import "os"

// previewLimit caps how much of a template the preview pane reads.
// Guideline templates are small; the cap only guards against a stray
// giant file in the templates tree.
const previewLimit = 64 * 1024

// readPreview reads up to previewLimit bytes of the template at path.
func readPreview(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(data) > previewLimit {
		data = data[:previewLimit]
	}
	return string(data), nil
}
