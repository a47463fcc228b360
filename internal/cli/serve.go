package cli

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/chordial/chordial/identify"
	"github.com/chordial/chordial/logging"
)

var flagAddr string

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve chord identification over HTTP",
	Long: `Serve chord identification over HTTP: POST MIDI note numbers to
/identify or /identify/batch and get the identification result as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := newIdentifier()
		if err != nil {
			return err
		}
		id.Warmup()
		logging.Info("listening", logging.Fields{"addr": flagAddr})
		return http.ListenAndServe(flagAddr, newRouter(id))
	},
}

type identifyRequest struct {
	Notes []int  `json:"notes"`
	Bass  *int   `json:"bass,omitempty"`
	Mode  string `json:"mode,omitempty"`
}

type batchRequest struct {
	Chords [][]int `json:"chords"`
}

func newRouter(id *identify.Identifier) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/identify", handleIdentify(id)).Methods("POST")
	router.HandleFunc("/identify/batch", handleBatch(id)).Methods("POST")
	router.HandleFunc("/stats", handleStats(id)).Methods("GET")
	router.HandleFunc("/healthz", handleHealth).Methods("GET")
	return cors.Default().Handler(router)
}

func handleIdentify(id *identify.Identifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req identifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "malformed request body", http.StatusBadRequest)
			return
		}

		var res identify.Result
		switch {
		case req.Bass != nil:
			res = id.IdentifyWithBass(req.Notes, *req.Bass)
		case req.Mode != "":
			res = id.IdentifyWithMode(req.Notes, identify.ParseMode(req.Mode))
		default:
			res = id.Identify(req.Notes)
		}

		status := http.StatusOK
		if res.Error != nil {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, res)
	}
}

func handleBatch(id *identify.Identifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "malformed request body", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, id.IdentifyBatch(req.Chords))
	}
}

func handleStats(id *identify.Identifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, id.Stats())
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error(err, "encoding response")
	}
}
