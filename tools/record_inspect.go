package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// Inspection tool: dumps the per-user moderation records into a table.
// Opens the store in read-only mode so it can run next to the live bot.
func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	prefix := flag.String("prefix", "user:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "First Name", "Warnings", "Window Size", "Last Activity"})
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
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				var doc struct {
					FirstName    string  `json:"first_name"`
					Warnings     int     `json:"warnings"`
					SpamActivity []int64 `json:"spam_activity"`
				}
				if err := json.Unmarshal(v, &doc); err != nil {
					fmt.Printf("Error unmarshaling key %s: %v\n", key, err)
					return nil
				}

				warnings := strconv.Itoa(doc.Warnings)
				if doc.Warnings >= 3 {
					warnings = color.Red.Sprint(warnings)
				} else if doc.Warnings > 0 {
					warnings = color.Yellow.Sprint(warnings)
				}

				lastActivity := "-"
				if n := len(doc.SpamActivity); n > 0 {
					lastActivity = time.Unix(0, doc.SpamActivity[n-1]).UTC().Format(time.RFC822)
				}

				table.Append([]string{
					key,
					doc.FirstName,
					warnings,
					strconv.Itoa(len(doc.SpamActivity)),
					lastActivity,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error while scanning records: ", err)
	}

	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	return badger.Open(opts)
}
