package main

import (
	"flag"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ramilsalihar/hospitalqueue/simulator"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for development
		return true
	},
}

// ClientMessage is a command from the browser control panel.
type ClientMessage struct {
	Type     string `json:"type"`
	Priority string `json:"priority,omitempty"` // normal | urgent | emergency
}

// ServerMessage is a push update to the browser.
type ServerMessage struct {
	Type      string                    `json:"type"`
	Running   *bool                     `json:"running,omitempty"`
	PatientID int                       `json:"patientId,omitempty"`
	Error     string                    `json:"error,omitempty"`
	Queue     []simulator.QueueEntry    `json:"queue,omitempty"`
	Stats     *simulator.LiveStatistics `json:"stats,omitempty"`
	WaitTimes []float64                 `json:"waitTimes,omitempty"`
}

// safeConn wraps a WebSocket connection with a mutex to prevent concurrent writes
type safeConn struct {
	*websocket.Conn
	writeMu sync.Mutex
}

func (sc *safeConn) WriteJSON(v interface{}) error {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	return sc.Conn.WriteJSON(v)
}

// uiUpdateLoop periodically pushes queue and statistics snapshots to the
// client. Reads are snapshot copies, so this loop never blocks the service
// goroutine, and a read on an empty clinic just sends zero placeholders.
func uiUpdateLoop(conn *safeConn, sched *simulator.Scheduler, stop <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			log.Println("UI update loop stopping")
			return

		case <-ticker.C:
			stats := sched.CurrentStatistics()
			updatePrometheusMetrics(stats, sched.Running())

			msg := ServerMessage{
				Type:      "update",
				Queue:     sched.QueueSnapshot(),
				Stats:     &stats,
				WaitTimes: sched.CompletedWaitTimes(),
			}
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("Error sending update: %v", err)
				return
			}
		}
	}
}

func sendStatus(conn *safeConn, sched *simulator.Scheduler) {
	running := sched.Running()
	conn.WriteJSON(ServerMessage{Type: "status", Running: &running})
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading connection: %v", err)
		return
	}
	defer conn.Close()

	// Wrap connection with mutex for safe concurrent writes
	safeConn := &safeConn{Conn: conn}

	log.Println("Client connected")

	// Each connection owns an independent clinic instance.
	sched, err := simulator.NewScheduler(simulator.DefaultSchedulerConfig())
	if err != nil {
		log.Printf("Error creating scheduler: %v", err)
		return
	}
	sched.LogEvent = func(msg string) {
		log.Printf("[CLINIC] %s", msg)
	}

	sendStatus(safeConn, sched)

	stop := make(chan struct{})
	go uiUpdateLoop(safeConn, sched, stop)

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Error reading message: %v", err)
			}
			break
		}

		log.Printf("Received command: %s", msg.Type)

		switch msg.Type {
		case "add_patient":
			priority, err := simulator.ParsePriority(msg.Priority)
			if err != nil {
				safeConn.WriteJSON(ServerMessage{Type: "error", Error: err.Error()})
				continue
			}
			id, err := sched.AddPatient(priority)
			if err != nil {
				safeConn.WriteJSON(ServerMessage{Type: "error", Error: err.Error()})
				continue
			}
			safeConn.WriteJSON(ServerMessage{Type: "admitted", PatientID: id})

		case "start":
			sched.Start()
			log.Println("Service started")
			sendStatus(safeConn, sched)

		case "stop":
			sched.Stop()
			log.Println("Service stopped")
			sendStatus(safeConn, sched)

		case "reset":
			sched.Reset()
			log.Println("Clinic reset")
			sendStatus(safeConn, sched)
		}
	}

	// Clean up
	close(stop)
	sched.Stop()
	log.Println("Client disconnected")
}

func serveHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		log.Printf("Error executing template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	flag.Parse()

	initPrometheusMetrics()

	http.HandleFunc("/", serveHome)
	http.HandleFunc("/ws", handleWebSocket)
	http.Handle("/metrics", promhttp.Handler())

	log.Printf("Hospital queue server listening on %s", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(fmt.Errorf("server failed: %w", err))
	}
}
