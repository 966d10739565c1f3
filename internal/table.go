package internal

import (
	"io"
	"message-board/domain"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderMessages prints messages as a borderless, tab-padded table.
func RenderMessages(w io.Writer, messages []domain.Message) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Title", "Body", "Attachment", "Created", "Updated"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, m := range messages {
		updated := "-"
		if m.UpdatedAt != nil {
			updated = domain.Time(*m.UpdatedAt).Format(time.DateTime)
		}
		table.Append([]string{
			m.ID,
			m.Title,
			m.Body,
			m.AttachmentURL,
			domain.Time(m.CreatedAt).Format(time.DateTime),
			updated,
		})
	}
	table.Render()
}
