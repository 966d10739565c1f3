package internal

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"message-board/domain"
	"message-board/repositories"
	"message-board/wire"
	"net/http"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed inspect.html
var templatesFS embed.FS

var inspectTemplate = template.Must(template.ParseFS(templatesFS, "inspect.html"))

type InspectRow struct {
	Key       string
	ID        string
	Title     string
	CreatedAt string
	UpdatedAt string
	Detail    string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// NewDebugRouter serves /inspect (raw Badger scan), /metrics and /healthz.
func NewDebugRouter(db *badger.DB, mapper RowMapper, statsProvider StatsProvider) http.Handler {
	if mapper == nil {
		mapper = MessageMapper
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = repositories.MessagePrefix
		}
		data := PageData{Prefix: prefix, Items: []InspectRow{}, Stats: map[string]any{}}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		err := db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				err := item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = inspectTemplate.Execute(w, data)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if db.IsClosed() {
			http.Error(w, "store closed", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, "OK")
	})
	return r
}

// StartDebugServer serves the debug router until ctx is canceled.
func StartDebugServer(ctx context.Context, log *slog.Logger, port int, handler http.Handler) {
	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("Starting debug server", "url", fmt.Sprintf("http://localhost:%d/inspect", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Debug server stopped", "error", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
}

// MessageMapper decodes message records. Anything else is shown as raw bytes.
func MessageMapper(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:       key,
		ID:        "--------",
		CreatedAt: "-",
		UpdatedAt: "-",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}
	message, err := wire.UnmarshalMessage(val)
	if err != nil {
		row.Detail = "undecodable, " + row.Detail
		return row
	}
	row.ID = message.ID
	row.Title = message.Title
	row.CreatedAt = domain.Time(message.CreatedAt).Format(time.RFC3339Nano)
	if message.UpdatedAt != nil {
		row.UpdatedAt = domain.Time(*message.UpdatedAt).Format(time.RFC3339Nano)
	}
	return row
}
