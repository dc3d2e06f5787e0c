package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/umputun/meditations/pkg/daily"
	"github.com/umputun/meditations/pkg/domain"
	"github.com/umputun/meditations/pkg/notify"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":        "ok",
		"version":       s.version,
		"cache_version": s.fetcher.Version(),
		"cache_ready":   s.fetcher.Ready(),
		"permission":    s.scheduler.Permission(),
		"time":          time.Now().UTC(),
	}
	if next, armed := s.scheduler.NextFire(); armed {
		status["next_fire"] = next
	}
	renderJSON(w, r, http.StatusOK, status)
}

// dailyHandler returns the meditation of the day; the index is derived from
// the calendar date alone so it matches what the background context shows
func (s *Server) dailyHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collection, err := s.content.Load(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to load collection: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}
	if len(collection.Items) == 0 {
		renderError(w, r, fmt.Errorf("empty collection"), http.StatusNotFound)
		return
	}

	now := time.Now()
	idx := daily.Index(now, len(collection.Items))
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"date":       now.Format("2006-01-02"),
		"index":      idx,
		"meditation": collection.Items[idx],
	})
}

// getNotificationsHandler returns the current settings and permission state
func (s *Server) getNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"settings":   s.scheduler.Settings(),
		"permission": s.scheduler.Permission(),
	}
	if next, armed := s.scheduler.NextFire(); armed {
		resp["next_fire"] = next
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// updateNotificationsHandler applies a partial settings update
func (s *Server) updateNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	var patch struct {
		Enabled *bool `json:"enabled"`
		Hour    *int  `json:"hour"`
		Minute  *int  `json:"minute"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	err := s.scheduler.UpdateSettings(r.Context(), notify.SettingsPatch{
		Enabled: patch.Enabled, Hour: patch.Hour, Minute: patch.Minute})
	switch {
	case errors.Is(err, notify.ErrPermissionDenied):
		renderError(w, r, err, http.StatusForbidden)
		return
	case errors.Is(err, notify.ErrUnsupported):
		renderError(w, r, err, http.StatusNotImplemented)
		return
	case err != nil:
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	s.getNotificationsHandler(w, r)
}

// testNotificationHandler asks the background context to show a notification
// now; the result is reported as a boolean, a failure has no effect on the
// daily schedule
func (s *Server) testNotificationHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.scheduler.SendTest(r.Context()); err != nil {
		log.Printf("[WARN] test notification failed: %v", err)
		renderJSON(w, r, http.StatusOK, map[string]interface{}{"sent": false, "error": err.Error()})
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"sent": true})
}

// permissionHandler records a permission outcome reported by the client
// surface, where the real platform prompt happens
func (s *Server) permissionHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Outcome domain.Permission `json:"outcome"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	err := s.scheduler.ReportPermission(r.Context(), req.Outcome)
	switch {
	case errors.Is(err, notify.ErrUnsupported):
		renderError(w, r, err, http.StatusNotImplemented)
		return
	case err != nil:
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"permission": s.scheduler.Permission()})
}

// notificationClickHandler relays a notification interaction to the click
// protocol: dismiss closes only, anything else focuses or opens a session
func (s *Server) notificationClickHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action string                  `json:"action"`
		Data   domain.NotificationData `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.clicks.HandleClick(r.Context(), req.Action, req.Data); err != nil {
		log.Printf("[ERROR] notification click failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "ok"})
}

// generateImageHandler produces a decorative image for a passage
func (s *Server) generateImageHandler(w http.ResponseWriter, r *http.Request) {
	if s.images == nil {
		renderError(w, r, fmt.Errorf("image generation not configured"), http.StatusNotImplemented)
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	url, err := s.images.Generate(r.Context(), req.Text)
	if err != nil {
		log.Printf("[ERROR] image generation failed: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"url": url})
}

// registerSessionHandler adds an open client session to the registry
func (s *Server) registerSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	id := s.sessions.Register(req.URL)
	renderJSON(w, r, http.StatusCreated, map[string]string{"id": id})
}

// unregisterSessionHandler removes a client session from the registry
func (s *Server) unregisterSessionHandler(w http.ResponseWriter, r *http.Request) {
	s.sessions.Unregister(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// appHandler serves everything else through the versioned cache with the
// network-first strategy; with no network and no capture the upstream
// failure propagates as-is, there is no synthetic offline page
func (s *Server) appHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := s.fetcher.Fetch(r.Context(), r.URL.Path)
	if err != nil {
		renderError(w, r, err, http.StatusBadGateway)
		return
	}

	for k, vv := range resp.Headers {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if resp.FromCache {
		w.Header().Set("X-Served-From", "cache")
	}
	w.WriteHeader(resp.Status)
	if _, err := w.Write(resp.Body); err != nil {
		log.Printf("[WARN] failed to write response: %v", err)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
