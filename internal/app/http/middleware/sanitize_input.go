package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

const multipartMemory = 32 << 20

var strictPolicy = bluemonday.StrictPolicy()

// fields that are compared byte for byte and must not be touched
var rawFields = map[string]bool{
	"password": true,
}

func cleanString(s string) string {
	// StrictPolicy escapes entities; unescape so "Sunrise & Seas" survives
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

func cleanValues(values map[string][]string) {
	for k, vs := range values {
		if rawFields[k] {
			continue
		}
		for i, v := range vs {
			vs[i] = cleanString(v)
		}
	}
}

// SanitizeAndCleanInputMiddleware strips markup from top-level JSON string
// fields and from form values, multipart included.
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		contentType := c.ContentType()
		switch {
		case contentType == gin.MIMEMultipartPOSTForm:
			if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
				abortBodyError(c, err, "Invalid form")
				return
			}
			cleanValues(c.Request.MultipartForm.Value)
			cleanValues(c.Request.PostForm)
			cleanValues(c.Request.Form)

		case contentType == gin.MIMEPOSTForm:
			if err := c.Request.ParseForm(); err != nil {
				abortBodyError(c, err, "Invalid form")
				return
			}
			cleanValues(c.Request.PostForm)
			cleanValues(c.Request.Form)

		case contentType == gin.MIMEJSON || strings.HasSuffix(contentType, "+json"):
			buf, err := io.ReadAll(c.Request.Body)
			if err != nil {
				abortBodyError(c, err, "Invalid body")
				return
			}
			if len(bytes.TrimSpace(buf)) == 0 {
				c.Request.Body = io.NopCloser(bytes.NewReader(buf))
				break
			}

			var body map[string]interface{}
			if err := json.Unmarshal(buf, &body); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
				return
			}
			for k, v := range body {
				if str, ok := v.(string); ok && !rawFields[k] {
					body[k] = cleanString(str)
				}
			}

			newBody, _ := json.Marshal(body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
			c.Request.ContentLength = int64(len(newBody))
		}

		c.Next()
	}
}

// BodyLimit caps the request body size.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func abortBodyError(c *gin.Context, err error, msg string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg, "details": err.Error()})
}
