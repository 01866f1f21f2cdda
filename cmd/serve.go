package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/harmonywheel/chord"
	"github.com/jsphweid/harmonywheel/constants"
	"github.com/jsphweid/harmonywheel/model"
	"github.com/jsphweid/harmonywheel/modifier"
	"github.com/jsphweid/harmonywheel/session"
	"github.com/jsphweid/harmonywheel/spelling"
	"github.com/jsphweid/harmonywheel/util"
	"github.com/jsphweid/harmonywheel/voicing"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveAddr       string
	serveBaseOctave int
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.GetAddr(), "address to listen on")
	serveCmd.Flags().IntVar(&serveBaseOctave, "octave", constants.GetBaseOctave(), "default base octave for voicings")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis API",
	Long:  `Serves chord detection, scale and voicing lookups, and live input sessions over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

type server struct {
	mu         sync.RWMutex
	sessions   map[string]*session.Session
	log        *zap.Logger
	baseOctave int
}

// NewRouter builds the HTTP API with CORS enabled for the browser front end.
func NewRouter(log *zap.Logger, baseOctave int) http.Handler {
	srv := &server{
		sessions:   make(map[string]*session.Session),
		log:        log,
		baseOctave: baseOctave,
	}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(srv.logRequests)
	router.HandleFunc("/detect", srv.handleDetect).Methods("POST")
	router.HandleFunc("/scale/{key}/{mode}", srv.handleScale).Methods("GET")
	router.HandleFunc("/voice", srv.handleVoice).Methods("POST")
	router.HandleFunc("/sessions", srv.handleCreateSession).Methods("POST")
	router.HandleFunc("/sessions", srv.handleListSessions).Methods("GET")
	router.HandleFunc("/sessions/{id}", srv.handleSessionState).Methods("GET")
	router.HandleFunc("/sessions/{id}", srv.handleDeleteSession).Methods("DELETE")
	router.HandleFunc("/sessions/{id}/notes", srv.handleSessionNote).Methods("POST")
	router.HandleFunc("/sessions/{id}/modifiers", srv.handleSessionModifier).Methods("POST")
	router.HandleFunc("/sessions/{id}/degree", srv.handleSessionDegree).Methods("POST")
	router.HandleFunc("/sessions/{id}/blur", srv.handleSessionBlur).Methods("POST")

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	}).Handler(router)
}

func (srv *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		srv.log.Debug("request", zap.String("method", r.Method), zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func decode(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.Wrap(err, "reading request body")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrap(err, "could not unmarshal request body")
	}
	return nil
}

func (srv *server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var input model.DetectRequestBody
	if err := decode(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	key, err := parseKey(input.Key, input.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "key"))
		return
	}
	notes, err := parseNotes(input.Notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "notes"))
		return
	}

	res := model.DetectResponse{Chord: chord.Detect(notes, key)}
	if res.Chord != nil {
		res.Symbol = res.Chord.Symbol()
		res.Numeral = numeral(key, res.Chord)
	}
	writeJSON(w, http.StatusOK, res)
}

func (srv *server) handleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key, err := spelling.ParseKey(vars["key"], vars["mode"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, describeScale(key))
}

// handleVoice voices explicit chord tones. An octave of 0 means the
// server's default base octave.
func (srv *server) handleVoice(w http.ResponseWriter, r *http.Request) {
	var input model.VoiceRequestBody
	if err := decode(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	tones, err := parseTones(input.Tones)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "tones"))
		return
	}
	key, err := parseKey(input.Key, "")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "key"))
		return
	}
	octave := input.Octave
	if octave == 0 {
		octave = srv.baseOctave
	}
	notes := voicing.Voice(tones, input.Inversion, octave, voicing.ParseStyle(input.Style))
	writeJSON(w, http.StatusOK, model.VoiceResponse{Notes: noteNames(notes, key)})
}

func (srv *server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id := uuid.New().String()
	sess := session.New(session.WithLogger(srv.log.With(zap.String("session", id))))

	srv.mu.Lock()
	srv.sessions[id] = sess
	srv.mu.Unlock()

	srv.log.Info("session created", zap.String("session", id))
	writeJSON(w, http.StatusCreated, model.SessionCreated{Id: id})
}

func (srv *server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	srv.mu.RLock()
	ids := util.SortedKeys(srv.sessions)
	srv.mu.RUnlock()
	writeJSON(w, http.StatusOK, ids)
}

func (srv *server) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := mux.Vars(r)["id"]
	srv.mu.RLock()
	sess, ok := srv.sessions[id]
	srv.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, errors.Errorf("no session %q", id))
	}
	return sess, ok
}

func (srv *server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := srv.lookup(w, r)
	if !ok {
		return
	}
	sess.Blur()
	id := mux.Vars(r)["id"]
	srv.mu.Lock()
	delete(srv.sessions, id)
	srv.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

// handleSessionState is polled on every UI refresh. The optional key and
// mode query parameters control spelling and the roman numeral.
func (srv *server) handleSessionState(w http.ResponseWriter, r *http.Request) {
	sess, ok := srv.lookup(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	key, err := parseKey(q.Get("key"), q.Get("mode"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "key"))
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(sess.Snapshot(key), key))
}

func stateResponse(st session.State, key *model.Key) model.SessionStateResponse {
	return model.SessionStateResponse{
		Notes:     noteNames(st.Notes, key),
		Chord:     st.Chord,
		Symbol:    st.Symbol,
		Numeral:   numeral(key, st.Chord),
		Inversion: st.Inversion,
		Extension: st.Extension,
	}
}

func (srv *server) handleSessionNote(w http.ResponseWriter, r *http.Request) {
	sess, ok := srv.lookup(w, r)
	if !ok {
		return
	}
	var input model.SessionNoteBody
	if err := decode(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	n, err := spelling.ParseNote(input.Note)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "note"))
		return
	}
	src, ok := session.ParseSource(input.Source)
	if !ok {
		writeError(w, http.StatusBadRequest, errors.Errorf("unknown source %q", input.Source))
		return
	}
	if input.On {
		vel := input.Velocity
		if vel == 0 {
			vel = constants.DefaultVelocity
		}
		sess.Add(n, src, vel)
	} else {
		sess.Remove(n, src)
	}
	writeJSON(w, http.StatusOK, stateResponse(sess.Snapshot(nil), nil))
}

func (srv *server) handleSessionModifier(w http.ResponseWriter, r *http.Request) {
	sess, ok := srv.lookup(w, r)
	if !ok {
		return
	}
	var input model.SessionModifierBody
	if err := decode(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	mod, ok := modifier.ParseModifier(input.Modifier)
	if !ok {
		writeError(w, http.StatusBadRequest, errors.Errorf("unknown modifier %q", input.Modifier))
		return
	}
	src, ok := modifier.ParseSource(input.Source)
	if !ok {
		writeError(w, http.StatusBadRequest, errors.Errorf("unknown modifier source %q", input.Source))
		return
	}
	accepted := sess.SetModifier(mod, src, input.Held)
	writeJSON(w, http.StatusOK, model.SessionModifierResponse{Accepted: accepted})
}

func (srv *server) handleSessionDegree(w http.ResponseWriter, r *http.Request) {
	sess, ok := srv.lookup(w, r)
	if !ok {
		return
	}
	var input model.SessionDegreeBody
	if err := decode(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	key, err := spelling.ParseKey(input.Key, input.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "key"))
		return
	}
	octave := input.Octave
	if octave == 0 {
		octave = srv.baseOctave
	}
	if _, _, ok := sess.PlayDegree(key, input.Degree, octave, voicing.ParseStyle(input.Style)); !ok {
		writeError(w, http.StatusBadRequest, errors.Errorf("degree %d is not a scale degree", input.Degree))
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(sess.Snapshot(&key), &key))
}

func (srv *server) handleSessionBlur(w http.ResponseWriter, r *http.Request) {
	sess, ok := srv.lookup(w, r)
	if !ok {
		return
	}
	sess.Blur()
	writeJSON(w, http.StatusOK, stateResponse(sess.Snapshot(nil), nil))
}

func serve() error {
	router := NewRouter(logger, serveBaseOctave)
	logger.Info("serving", zap.String("addr", serveAddr))
	return http.ListenAndServe(serveAddr, router)
}
