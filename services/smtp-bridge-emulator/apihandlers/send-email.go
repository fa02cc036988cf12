package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jordan-wright/email"

	mw "github.com/e5hapiro/chevra-guest-form/pkg/apihelpers/middlewares"
	emailsending "github.com/e5hapiro/chevra-guest-form/pkg/messaging/email-sending"
)

const emlExtension = ".eml"

var invalidFilenameChars = regexp.MustCompile(`[\/\\:?"<>|*\s]`)

func (h *HttpEndpoints) AddRoutes(rg *gin.RouterGroup) {
	rg.POST("/send-email",
		mw.HasValidAPIKey(h.apiKeys),
		mw.RequirePayload(),
		h.sendEmail)
}

// toMessage renders the request as a MIME message, the same way it would be
// handed to an SMTP server.
func (h *HttpEndpoints) toMessage(req emailsending.SendEmailReq) ([]byte, error) {
	e := &email.Email{
		To:      req.To,
		From:    h.from,
		Subject: req.Subject,
		Text:    []byte(req.Content),
		Headers: textproto.MIMEHeader{},
	}
	if req.HeaderOverrides != nil {
		if req.HeaderOverrides.From != "" {
			e.From = req.HeaderOverrides.From
		}
		if req.HeaderOverrides.Sender != "" {
			e.Sender = req.HeaderOverrides.Sender
		}
		if !req.HeaderOverrides.NoReplyTo && len(req.HeaderOverrides.ReplyTo) > 0 {
			e.ReplyTo = req.HeaderOverrides.ReplyTo
		}
	}
	if req.HighPrio {
		e.Headers.Set("X-Priority", "1")
	}
	return e.Bytes()
}

func (h *HttpEndpoints) saveEmail(req emailsending.SendEmailReq) ([]string, error) {
	message, err := h.toMessage(req)
	if err != nil {
		return nil, err
	}

	files := []string{}
	for _, recipient := range req.To {
		folderPath := filepath.Join(h.emailsDir, invalidFilenameChars.ReplaceAllString(recipient, "_"))
		if err := os.MkdirAll(folderPath, os.ModePerm); err != nil {
			slog.Error("Error creating folder for recipient", slog.String("recipient", recipient), slog.String("error", err.Error()))
			return files, err
		}

		filePath := getUniqueFilePath(folderPath, req.Subject)
		if err := os.WriteFile(filePath, message, 0644); err != nil {
			slog.Error("Error writing email file", slog.String("recipient", recipient), slog.String("error", err.Error()))
			return files, err
		}
		files = append(files, filePath)
	}
	return files, nil
}

// getUniqueFilePath appends a counter when a file for the same subject and
// second already exists.
func getUniqueFilePath(folderPath, subject string) string {
	baseName := getFilenameBase(subject)
	filePath := filepath.Join(folderPath, baseName+emlExtension)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
			return filePath
		}
		filePath = filepath.Join(folderPath, baseName+"_"+strconv.Itoa(counter)+emlExtension)
	}
}

func getFilenameBase(subject string) string {
	sanitized := []rune(invalidFilenameChars.ReplaceAllString(subject, "_"))
	if len(sanitized) > 20 {
		sanitized = sanitized[:20]
	}
	return time.Now().Format("20060102_150405") + "_" + string(sanitized)
}

func (h *HttpEndpoints) sendEmail(c *gin.Context) {
	var req emailsending.SendEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.To) < 1 || req.To[0] == "" {
		slog.Error("missing 'to' field")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'to' field"})
		return
	}

	files, err := h.saveEmail(req)
	if err != nil {
		slog.Error("Email could not be saved", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email could not be saved"})
		return
	}

	slog.Info("Email has been saved", slog.Any("files", files))
	c.JSON(http.StatusOK, gin.H{"message": "Email has been saved", "files": files})
}
