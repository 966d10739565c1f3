package internal

import (
	"bytes"
	"message-board/domain"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestRenderMessages(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer

	RenderMessages(&buf, []domain.Message{
		{ID: "a", Title: "first", CreatedAt: 0},
		{ID: "b", Title: "second", CreatedAt: 0, UpdatedAt: lo.ToPtr(uint64(60_000_000_000))},
	})

	out := buf.String()
	req.Contains(out, "TITLE")
	req.Contains(out, "first")
	req.Contains(out, "1970-01-01 00:01:00")
}
