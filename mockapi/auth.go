package mockapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/claimready/claimready/internal/util"
	"github.com/claimready/claimready/internal/uuid"
)

// account is a seeded login. The password is stored as an Argon2id
// key, the same way the production service stores credentials.
type account struct {
	user    userDoc
	salt    []byte
	passKey []byte
	params  util.Argon2idParams
}

// seededAccounts lists the development logins. Passwords are derived
// at startup so the stored state never holds plaintext.
var seededLogins = []struct {
	email, password, firstName, lastName, id string
	premium                                  bool
}{
	{"vet@example.com", "anchors-aweigh-1945", "Sam", "Reyes", "user-1", false},
	{"premium@example.com", "semper-fi-1775", "Jordan", "Okafor", "user-2", true},
}

func seedAccounts() map[string]*account {
	params := util.DefaultArgon2idParams()
	accounts := make(map[string]*account, len(seededLogins))
	for _, l := range seededLogins {
		salt, err := util.RandomBytes(16)
		if err != nil {
			panic(err)
		}
		key, err := util.DeriveArgon2idKey(l.password, salt, params)
		if err != nil {
			panic(err)
		}
		user := userDoc{Email: l.email, FirstName: l.firstName, LastName: l.lastName, IsPremium: l.premium}
		// Half the fixtures use the legacy identifier spelling so
		// client normalization stays honest.
		if l.premium {
			user.LegacyID = l.id
		} else {
			user.ID = l.id
		}
		accounts[normalizeEmail(l.email)] = &account{
			user:    user,
			salt:    salt,
			passKey: key,
			params:  params,
		}
	}
	return accounts
}

// normalizeEmail canonicalizes a login identifier: Unicode NFKD then
// lowercase, so visually identical inputs compare equal.
func normalizeEmail(email string) string {
	return strings.ToLower(util.Normalize(strings.TrimSpace(email)))
}

func randomSigningKey() []byte {
	key, err := util.RandomBytes(32)
	if err != nil {
		panic(err)
	}
	return key
}

func (a *API) issueToken(subject string, ttl time.Duration) (string, error) {
	now := a.now()
	claims := jwt.MapClaims{
		"sub": subject,
		"jti": uuid.New(),
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.signingKey)
}

// parseToken validates a bearer token and returns its subject and
// expiry.
func (a *API) parseToken(token string) (string, time.Time, bool) {
	parsed, err := jwt.Parse(token,
		func(t *jwt.Token) (any, error) { return a.signingKey, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !parsed.Valid {
		return "", time.Time{}, false
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return "", time.Time{}, false
	}
	return sub, exp.Time, true
}

type ctxKey int

const (
	ctxKeyAccount ctxKey = iota
	ctxKeyExpiry
)

// AuthMiddleware validates the bearer token and attaches the account
// to the request context.
func (a *API) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "auth_invalid", "missing bearer token")
			return
		}
		sub, exp, ok := a.parseToken(token)
		if !ok {
			writeError(w, http.StatusUnauthorized, "auth_invalid", "token is invalid or expired")
			return
		}
		acct, ok := a.accounts[sub]
		if !ok {
			writeError(w, http.StatusUnauthorized, "auth_invalid", "unknown account")
			return
		}
		ctx := context.WithValue(r.Context(), ctxKeyAccount, acct)
		ctx = context.WithValue(ctx, ctxKeyExpiry, exp)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func accountFrom(r *http.Request) *account {
	acct, _ := r.Context().Value(ctxKeyAccount).(*account)
	return acct
}

// LoginHandler handles POST /auth/login.
func (a *API) LoginHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[loginRequest](w, r, maxBodySize)
	if !ok {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "email and password are required")
		return
	}

	acct, ok := a.accounts[normalizeEmail(req.Email)]
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "email or password is incorrect")
		return
	}
	match, err := util.CompareArgon2idKey(req.Password, acct.salt, acct.params, acct.passKey)
	if err != nil || !match {
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "email or password is incorrect")
		return
	}

	token, err := a.issueToken(normalizeEmail(req.Email), tokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "failed to issue token")
		return
	}

	a.logger.Info("login", "email", acct.user.Email)
	writeJSON(w, http.StatusOK, loginResponse{
		User:      acct.user,
		Token:     token,
		ExpiresIn: int64(tokenTTL / time.Second),
	})
}

// ProfileHandler handles GET /auth/profile. When the presented token
// is inside the rotation window the response carries a fresh one.
func (a *API) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	forced := a.forceProfile
	a.mu.Unlock()
	if forced != 0 {
		switch forced {
		case http.StatusUnauthorized:
			writeError(w, forced, "auth_invalid", "token is invalid or expired")
		case http.StatusForbidden:
			writePremiumRequired(w)
		default:
			writeError(w, forced, "internal", "injected failure")
		}
		return
	}

	acct := accountFrom(r)
	exp, _ := r.Context().Value(ctxKeyExpiry).(time.Time)

	resp := profileResponse{User: acct.user}
	if remaining := exp.Sub(a.now()); remaining < rotateWithin {
		token, err := a.issueToken(normalizeEmail(acct.user.Email), tokenTTL)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal", "failed to rotate token")
			return
		}
		resp.Token = token
		resp.ExpiresIn = int64(tokenTTL / time.Second)
	}
	writeJSON(w, http.StatusOK, resp)
}
