package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"

	"github.com/coder/websocket"

	"github.com/procmesh/apartment-engine/internal/config"
	"github.com/procmesh/apartment-engine/internal/protocol"
	"github.com/procmesh/apartment-engine/internal/web/views"
	"github.com/procmesh/apartment-engine/internal/ws"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (empty for defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	scene, err := NewSceneState(cfg.Apartment.Params())
	if err != nil {
		log.Fatalf("initial generation failed: %v", err)
	}
	snap := scene.Snapshot()
	log.Printf("initial scene %s: %d floors, %d rooms, seed %d",
		snap.SceneID, len(snap.Floors), len(snap.Rooms), snap.Parameters.Seed)

	hub := ws.NewHub()
	sequence := NewSequenceGenerator()
	broadcaster := NewBroadcaster(hub, sequence)
	handlers := NewHandlers(scene, broadcaster, NewLogger())

	mux := http.NewServeMux()
	fileServer := http.FileServer(http.Dir(cfg.Server.StaticDir))
	mux.Handle("/static/", http.StripPrefix("/static/", fileServer))

	mux.HandleFunc("/stream", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.Add(conn)

		hello, _ := json.Marshal(protocol.PatchEnvelope{
			Sequence: 0,
			EventID:  0,
			Type:     "SceneRegenerated",
			Payload:  protocol.SceneRegenerated{Snapshot: scene.Snapshot()},
		})
		_ = conn.Write(context.Background(), websocket.MessageText, hello)

		go func(c *websocket.Conn) {
			defer hub.Remove(c)
			defer c.Close(websocket.StatusNormalClosure, "")
			for {
				_, data, err := c.Read(context.Background())
				if err != nil {
					return
				}
				if err := handlers.HandleWebSocketMessage(data); err != nil {
					log.Printf("intent rejected: %v", err)
				}
			}
		}(conn)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if err := views.IndexPage(scene.Snapshot()).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	log.Printf("listening on %s", cfg.Server.ListenAddress)
	log.Fatal(http.ListenAndServe(cfg.Server.ListenAddress, mux))
}
