package handler

import (
	"net/http"
	"time"

	"github.com/RigobertoEHA1/chismezon/internal/domain"
	"github.com/RigobertoEHA1/chismezon/internal/middleware"
	"github.com/RigobertoEHA1/chismezon/internal/utils"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.auth.Login(body.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.JwtTTL()),
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, domain.AuthState{Admin: true})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusOK)
}

// Me reports the AuthState for this request. Views read the admin flag
// from here and nowhere else.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, middleware.GetAuthState(r))
}
