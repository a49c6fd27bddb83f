package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/RigobertoEHA1/chismezon/internal/domain"
	"github.com/RigobertoEHA1/chismezon/internal/utils"
)

const DeviceTokenCookie = "deviceToken"

// DeviceToken gives every visitor a durable anonymous identity used by the
// reaction vote gate. Clearing cookies mints a fresh identity and allows
// voting again; that is the accepted heuristic, not a bug.
func DeviceToken(secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var deviceId domain.DeviceId
			if cookie, err := r.Cookie(DeviceTokenCookie); err == nil && cookie.Value != "" {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					deviceId = parsed.String()
				}
			}
			if deviceId == "" {
				deviceId = uuid.NewString()
				if ip, err := utils.GetIP(r); err == nil {
					slog.Debug("minting device token", "device", deviceId, "ip", ip)
				}
				http.SetCookie(w, &http.Cookie{
					Name:     DeviceTokenCookie,
					Value:    deviceId,
					Path:     "/",
					Expires:  time.Now().Add(365 * 24 * time.Hour),
					HttpOnly: true,
					Secure:   secureCookies,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), deviceIdKey, deviceId)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithDeviceId returns a context carrying the given device identity, the
// way DeviceToken would have set it.
func WithDeviceId(ctx context.Context, deviceId domain.DeviceId) context.Context {
	return context.WithValue(ctx, deviceIdKey, deviceId)
}

// GetDeviceId returns the device identity minted by DeviceToken, or "" if
// the middleware did not run.
func GetDeviceId(r *http.Request) domain.DeviceId {
	deviceId, ok := r.Context().Value(deviceIdKey).(domain.DeviceId)
	if !ok {
		return ""
	}
	return deviceId
}
