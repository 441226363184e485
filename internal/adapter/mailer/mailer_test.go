package mailer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chetan1913051012-sudo/effective-system/internal/core/domain"
)

func TestDraftWriterCompose(t *testing.T) {
	dir := t.TempDir()
	w := NewDraftWriter(filepath.Join(dir, "drafts"))

	msg := domain.MailMessage{
		To:      "orders@mirchico.example",
		Subject: "New order ord-abc123",
		Body:    "Order ord-abc123\nTotal: ₹250",
	}
	require.NoError(t, w.Compose(msg))

	data, err := os.ReadFile(
		filepath.Join(dir, "drafts", "new-order-ord-abc123.eml"),
	)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "To: orders@mirchico.example")
	assert.Contains(t, text, "Subject: New order ord-abc123")
	assert.Contains(t, text, "Total: ₹250")
}
