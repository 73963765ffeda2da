package handlers

import (
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/devdocs/internal/httpserver/deps"
	"github.com/MrSnakeDoc/devdocs/internal/logger"
	"github.com/MrSnakeDoc/devdocs/internal/session"
	"github.com/MrSnakeDoc/devdocs/internal/web"
)

const maxLoginForm = 4 << 10

// Login signs the visitor in with the posted email and display name and
// redirects home. Invalid input re-renders the form with status 400.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxLoginForm)
		if err := r.ParseForm(); err != nil {
			countLogin(d, "invalid")
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		email := r.PostFormValue("email")
		name := r.PostFormValue("display_name")

		s, err := d.Sessions.Start(r.Context(), w, email, name)
		switch {
		case errors.Is(err, session.ErrInvalidUser):
			countLogin(d, "invalid")
			loginPage(d, w, r, http.StatusBadRequest, web.LoginView{
				Email:       email,
				DisplayName: name,
				Error:       "Please enter a valid email address.",
			})
			return
		case err != nil:
			countLogin(d, "error")
			d.Logger.Error("sign-in failed", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		countLogin(d, "ok")
		d.Logger.Info("signed in", logger.String("session", s.ID[:8]))
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Logout ends the current session, if any, and redirects home.
func Logout(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Sessions.End(w, r); err != nil {
			d.Logger.Warn("sign-out failed", logger.Error(err))
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func countLogin(d deps.Deps, result string) {
	if d.Metrics != nil {
		d.Metrics.LoginsTotal.WithLabelValues(result).Inc()
	}
}
