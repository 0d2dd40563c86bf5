package helper

import (
	"errors"
	"log"
	"net/http"

	"nc-news-api/models"

	"github.com/gin-gonic/gin"
	localeEN "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/jackc/pgx/v5/pgconn"
	validator "gopkg.in/go-playground/validator.v9"
	translationsEN "gopkg.in/go-playground/validator.v9/translations/en"
	"gorm.io/gorm"
)

// Postgres error codes the API translates instead of surfacing raw. These
// cover inputs that slip past the validators and races that slip past the
// existence checks.
const (
	pgInvalidTextRepresentation = "22P02"
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
)

// HTTPHelper validates request payloads and maps every error the services
// can produce onto an HTTP status and a {msg} body.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	en := localeEN.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := translationsEN.RegisterDefaultTranslations(validate, trans); err != nil {
		log.Printf("register validator translations: %v", err)
	}

	return &HTTPHelper{Validate: validate, Translator: trans}
}

// ValidateStruct runs the validate tags on a bound payload. Failures are
// collapsed into the API's single missing-fields rejection; the translated
// detail is logged for operators.
func (u *HTTPHelper) ValidateStruct(payload interface{}) error {
	err := u.Validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			log.Printf("payload validation: %s", fieldErr.Translate(u.Translator))
		}
		return models.InvalidField("Missing required fields")
	}
	return err
}

// GetStatusCode resolves the HTTP status for an error without writing a
// response.
func (u *HTTPHelper) GetStatusCode(err error) int {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation, pgNotNullViolation:
			return http.StatusBadRequest
		case pgForeignKeyViolation:
			return http.StatusNotFound
		}
	}
	return models.Unhandled().Status
}

// SendError writes the mapped response for err. Anything unrecognized is a
// 500 with a generic body; internals never leak to clients.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"msg": apiErr.Msg})
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "404 - Not Found"})
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation:
			c.JSON(http.StatusBadRequest, gin.H{"msg": "400 - Bad Request: invalid_id"})
			return
		case pgNotNullViolation:
			c.JSON(http.StatusBadRequest, gin.H{"msg": "400 - Bad Request: Missing required fields"})
			return
		case pgForeignKeyViolation:
			c.JSON(http.StatusNotFound, gin.H{"msg": "404 - Not Found: Article or User does not exist"})
			return
		}
	}

	log.Printf("unhandled error: %v", err)
	fallback := models.Unhandled()
	c.JSON(fallback.Status, gin.H{"msg": fallback.Msg})
}
