package extractor

import "fmt"

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("pdf reader panic: %w", err)
	}
	return fmt.Errorf("pdf reader panic: %v", r)
}
