package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/shamikhz/UUID-Generator/pkg/generator"
	"github.com/shamikhz/UUID-Generator/pkg/panel"
	"github.com/shamikhz/UUID-Generator/pkg/session"
)

// SessionCookie is the cookie that carries the browser session ID.
const SessionCookie = "uuidgen_session"

//go:embed assets/index.html assets/openapi.yaml
var assets embed.FS

var pageTemplate = template.Must(template.ParseFS(assets, "assets/index.html"))

type selectorButton struct {
	Version generator.Version
	Label   string
	Active  bool
}

type pageData struct {
	Versions []selectorButton
	State    panel.State
}

func newPageData(st panel.State) pageData {
	data := pageData{State: st}
	for _, v := range generator.Versions() {
		data.Versions = append(data.Versions, selectorButton{
			Version: v,
			Label:   v.Label(),
			Active:  v == st.Version,
		})
	}
	return data
}

// session returns the caller's session ID, issuing a cookie for a new one.
func (s *Server) session(w http.ResponseWriter, r *http.Request) string {
	var current string
	if c, err := r.Cookie(SessionCookie); err == nil {
		current = c.Value
	}
	sid, created := s.sessions.Ensure(current)
	if created {
		setSessionCookie(w, sid)
	}
	return sid
}

func setSessionCookie(w http.ResponseWriter, sid string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// withPanel runs fn on the caller's panel and returns the resulting state.
// A session evicted between lookup and use is replaced once.
func (s *Server) withPanel(w http.ResponseWriter, r *http.Request, fn func(*panel.Panel) error) (panel.State, error) {
	var st panel.State
	run := func(p *panel.Panel) error {
		err := fn(p)
		st = p.State()
		return err
	}

	err := s.sessions.Do(s.session(w, r), run)
	if errors.Is(err, session.ErrNotFound) {
		sid := s.sessions.Create()
		setSessionCookie(w, sid)
		err = s.sessions.Do(sid, run)
	}
	return st, err
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	st, err := s.withPanel(w, r, func(*panel.Panel) error { return nil })
	if err != nil {
		s.log.Error("load panel", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageData(st)); err != nil {
		s.log.Error("render page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleSelectForm(w http.ResponseWriter, r *http.Request) {
	v, err := generator.ParseVersion(r.FormValue("version"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := s.withPanel(w, r, func(p *panel.Panel) error { return p.Select(v) }); err != nil {
		s.log.Error("select version", "version", v.String(), "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleGenerateForm(w http.ResponseWriter, r *http.Request) {
	_, err := s.withPanel(w, r, func(p *panel.Panel) error { return p.Generate() })
	if err != nil && !errors.Is(err, panel.ErrNoSelection) {
		s.log.Error("generate", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
