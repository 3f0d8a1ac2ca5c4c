package middleware

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/Modeva-Ecommerce/product-filter-api/models"
	"github.com/Modeva-Ecommerce/product-filter-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthOptions configures the credential gate. Empty fields relax the check:
// with no Username and PasswordHash any non-empty Basic pair is accepted, and
// with no JWTSecret Bearer tokens are refused.
type AuthOptions struct {
	Username     string
	PasswordHash string
	JWTSecret    string
}

var errMalformedBasic = errors.New("malformed basic credentials")

// AuthMiddleware allows a request carrying valid Basic credentials or a valid
// Bearer JWT and answers 401 otherwise.
func AuthMiddleware(opts AuthOptions, logger zerolog.Logger) gin.HandlerFunc {
	log := logger.With().Str("component", "auth").Logger()

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, credentials, _ := strings.Cut(header, " ")

		var (
			username string
			err      error
		)
		switch {
		case strings.EqualFold(scheme, "Basic"):
			username, err = checkBasic(opts, strings.TrimSpace(credentials))
		case strings.EqualFold(scheme, "Bearer") && opts.JWTSecret != "":
			username, err = checkBearer(opts, header)
		default:
			err = errors.New("missing or unsupported credentials")
		}

		if err != nil {
			log.Warn().Err(err).Str("ip", c.ClientIP()).Str("path", c.Request.URL.Path).Msg("unauthorized request")
			c.Header("WWW-Authenticate", "Basic")
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
			c.Abort()
			return
		}

		log.Info().Str("username", username).Msg("authenticated request")
		c.Set(models.ContextKeyUsername, username)
		c.Next()
	}
}

func checkBasic(opts AuthOptions, encoded string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", errMalformedBasic
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found || username == "" || password == "" {
		return "", errMalformedBasic
	}

	if opts.Username != "" && username != opts.Username {
		return "", errors.New("unknown user")
	}
	if opts.PasswordHash != "" && !utils.CheckPassword(opts.PasswordHash, password) {
		return "", errors.New("wrong password")
	}
	return username, nil
}

func checkBearer(opts AuthOptions, header string) (string, error) {
	token, err := utils.ExtractTokenFromHeader(header)
	if err != nil {
		return "", err
	}
	claims, err := utils.ValidateJWT(opts.JWTSecret, token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// GetUsernameFromContext returns the authenticated caller, if any.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	username, exists := c.Get(models.ContextKeyUsername)
	if !exists {
		return "", false
	}
	name, ok := username.(string)
	return name, ok
}
