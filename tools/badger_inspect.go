package main

import (
	"fmt"
	"log/slog"
	"message-board/internal"
	"message-board/repositories"
	"message-board/storage"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
)

func main() {
	dbPath := pflag.String("db", "./data/badger", "Path to badger DB")
	prefix := pflag.String("prefix", repositories.MessagePrefix, "Prefix to scan")
	pflag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	db, err := storage.Open(storage.Options{Path: *dbPath, ReadOnly: true}, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error while opening Badger: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "ID", "Title", "Created", "Updated", "Detail"})
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

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.KeyCopy(nil))
			err := item.Value(func(v []byte) error {
				// Undecodable values still get a row with the error in Detail
				row := internal.MessageMapper(key, v)
				table.Append([]string{row.Key, row.ID, row.Title, row.CreatedAt, row.UpdatedAt, row.Detail})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error while scanning: %v\n", err)
		os.Exit(1)
	}

	table.Render()
}
