package mailer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chetan1913051012-sudo/effective-system/internal/core/domain"
	"github.com/chetan1913051012-sudo/effective-system/internal/core/port"
)

var _ port.MailComposer = (*DraftWriter)(nil)

// DraftWriter is the on-device stand-in for an outward mail channel:
// composed messages land as draft files in a directory, nothing is
// delivered anywhere.
type DraftWriter struct {
	dir string
}

func NewDraftWriter(dir string) DraftWriter {
	return DraftWriter{dir: dir}
}

func (w DraftWriter) Compose(m domain.MailMessage) error {
	const op = "DraftWriter.Compose"
	log := slog.With("op", op)

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	name := domain.SlugifyName(m.Subject)
	if name == "" {
		name = "draft"
	}
	path := filepath.Join(w.dir, name+".eml")

	body := fmt.Sprintf("To: %s\nSubject: %s\n\n%s\n", m.To, m.Subject, m.Body)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("draft composed", "path", path)
	return nil
}
