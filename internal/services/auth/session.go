package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	SessionCookieName = "session"
	sessionTTL        = 14 * 24 * time.Hour
)

// Sessions issues and checks signed session cookies of the form
// "<userID>.<issuedAt>.<signature>", issuedAt in unix seconds.
type Sessions struct {
	secret []byte
	now    func() time.Time
}

func NewSessions(secret string) *Sessions {
	return &Sessions{secret: []byte(secret), now: time.Now}
}

func (s *Sessions) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Create sets the session cookie for userID.
func (s *Sessions) Create(w http.ResponseWriter, userID string) {
	payload := userID + "." + strconv.FormatInt(s.now().Unix(), 10)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    payload + "." + s.sign(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  s.now().Add(sessionTTL),
	})
}

// Clear deletes the session cookie.
func (s *Sessions) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Parse validates the request's session cookie and returns its user id.
// Cookies older than the session TTL are rejected whatever the browser kept.
func (s *Sessions) Parse(r *http.Request) (string, bool) {
	c, err := r.Cookie(SessionCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	i := strings.LastIndexByte(c.Value, '.')
	if i <= 0 {
		return "", false
	}
	payload, sig := c.Value[:i], c.Value[i+1:]
	if !hmac.Equal([]byte(sig), []byte(s.sign(payload))) {
		return "", false
	}
	j := strings.LastIndexByte(payload, '.')
	if j <= 0 {
		return "", false
	}
	issued, err := strconv.ParseInt(payload[j+1:], 10, 64)
	if err != nil {
		return "", false
	}
	if !s.now().Before(time.Unix(issued, 0).Add(sessionTTL)) {
		return "", false
	}
	return payload[:j], true
}
