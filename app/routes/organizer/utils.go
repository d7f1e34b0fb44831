package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// saveEventImage stores an uploaded event image under the upload directory and
// returns the relative path to record on the event. Returns "" when the form
// carries no image.
func (h *Handler) saveEventImage(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("image")
	if err != nil || file == nil {
		return "", nil
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s", uuid.New().String(), sanitizeFilename(file.Filename))
	dest := filepath.Join(h.UploadDir, name)
	if err := c.SaveFile(file, dest); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	return filepath.ToSlash(filepath.Join("uploads", name)), nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
