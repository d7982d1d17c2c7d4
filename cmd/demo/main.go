// Command demo runs a small websocket server that exposes one slot grid
// per connected client. Clients send add/split/combine/swap/remove
// commands as JSON and receive the refreshed grid after every mutation.
// It exists to exercise the engine end to end; it is not a game.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Lubba-64/inventory-go/catalog"
	"github.com/Lubba-64/inventory-go/logging"
	"github.com/Lubba-64/inventory-go/logging/sinks"
	"github.com/Lubba-64/inventory-go/samples"
)

func main() {
	var (
		addr        = flag.String("addr", ":8080", "listen address")
		catalogPath = flag.String("catalog", "", "item definitions file (defaults to config/items/definitions.json)")
		eventLog    = flag.String("event-log", "", "append structured events to this file as JSON lines")
	)
	flag.Parse()

	lookup, err := buildLookup(*catalogPath)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	cfg := logging.DefaultConfig()
	cfg.JSON.FilePath = *eventLog
	router, err := buildRouter(cfg)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		router.Close(ctx)
	}()

	hub := newHub(lookup, router)

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("upgrade failed: %v", err)
			return
		}

		s := hub.Join()
		s.conn = conn
		log.Printf("session %s connected", s.id)

		if err := s.send(hub.SnapshotState(s)); err != nil {
			log.Printf("failed to send initial state to %s: %v", s.id, err)
			hub.Disconnect(s.id)
			conn.Close()
			return
		}

		for {
			_, payload, err := conn.ReadMessage()
			if err != nil {
				log.Printf("session %s disconnected: %v", s.id, err)
				hub.Disconnect(s.id)
				conn.Close()
				return
			}

			var cmd commandMessage
			if err := json.Unmarshal(payload, &cmd); err != nil {
				if sendErr := s.send(errorMessage{Type: "error", Op: "parse", Reason: "bad_json"}); sendErr != nil {
					hub.Disconnect(s.id)
					conn.Close()
					return
				}
				continue
			}

			reply := hub.Apply(r.Context(), s, cmd)
			if err := s.send(reply); err != nil {
				hub.Disconnect(s.id)
				conn.Close()
				return
			}
			if err := s.send(hub.SnapshotState(s)); err != nil {
				hub.Disconnect(s.id)
				conn.Close()
				return
			}
		}
	})

	log.Printf("demo listening on %s", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// buildLookup prefers definitions from the catalog file and falls back
// to the built-in samples when no file resolves anything.
func buildLookup(path string) (itemLookup, error) {
	paths := catalog.DefaultPaths()
	if path != "" {
		paths = []string{path}
	}
	registry, err := catalog.Load(paths...)
	if err != nil {
		return nil, err
	}
	if registry.Len() == 0 {
		return samples.ItemByID, nil
	}
	return registry.Resolve, nil
}

// buildRouter assembles the console sink plus a JSON file sink when the
// config names an event-log path.
func buildRouter(cfg logging.Config) (*logging.Router, error) {
	named := []logging.NamedSink{
		{Name: "console", Sink: sinks.NewConsoleSink(os.Stdout, cfg.Console)},
	}
	if cfg.JSON.FilePath != "" {
		file, err := os.OpenFile(cfg.JSON.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		named = append(named, logging.NamedSink{
			Name: "json",
			Sink: sinks.NewJSON(file, cfg.JSON.FlushInterval),
		})
	}
	return logging.NewRouter(nil, cfg, named)
}
