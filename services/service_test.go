package services_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/Mayur-aditya-007/AyuVeda-Website/config"
	"github.com/Mayur-aditya-007/AyuVeda-Website/models"
	"github.com/Mayur-aditya-007/AyuVeda-Website/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// capturingSender records outgoing mail instead of calling SES.
type capturingSender struct {
	mu   sync.Mutex
	sent []capturedMail
	fail bool
}

type capturedMail struct {
	To      string
	Subject string
	Body    string
}

func (s *capturingSender) Send(to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return fmt.Errorf("smtp down")
	}
	s.sent = append(s.sent, capturedMail{To: to, Subject: subject, Body: body})
	return nil
}

func (s *capturingSender) last() capturedMail {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sent) == 0 {
		return capturedMail{}
	}
	return s.sent[len(s.sent)-1]
}

func (s *capturingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

// setupTestDB points config.DB at a fresh in-memory SQLite database and
// installs a capturing mail sender.
func setupTestDB(t *testing.T) *capturingSender {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Ingredient{}))

	config.DB = db

	sender := &capturingSender{}
	utils.SetEmailSender(sender)
	return sender
}

func findUser(t *testing.T, email string) *models.User {
	t.Helper()
	var user models.User
	require.NoError(t, config.DB.Where("email = ?", email).First(&user).Error)
	return &user
}
