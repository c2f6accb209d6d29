package services_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"restoration-admin-backend/internal/models"
	"restoration-admin-backend/internal/services"
)

func TestFormatPhoneForWhatsApp(t *testing.T) {
	assert.Equal(t, "5511987654321", services.FormatPhoneForWhatsApp("(11) 98765-4321", "55"))
	assert.Equal(t, "5521999990000", services.FormatPhoneForWhatsApp("+55 (21) 99999-0000", "55"))
	assert.Equal(t, "", services.FormatPhoneForWhatsApp("n/a", "55"))
}

func TestContactLinks_Mailto(t *testing.T) {
	links := services.NewContactLinks("RestauraPRO", "55")
	req := models.RestorationRequest{CustomerName: "Ana Souza", CustomerEmail: "ana@example.com"}

	link := links.Mailto(req)
	require.True(t, strings.HasPrefix(link, "mailto:ana@example.com?"))
	assert.NotContains(t, link, "+")
	assert.NotContains(t, link, " ")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "YOUR RESTORED PHOTO", q.Get("subject"))
	assert.Contains(t, q.Get("body"), "Hello, Ana Souza!")
	assert.Contains(t, q.Get("body"), "RestauraPRO")
	assert.Contains(t, q.Get("body"), "100% satisfied")
}

func TestContactLinks_WhatsApp(t *testing.T) {
	links := services.NewContactLinks("RestauraPRO", "55")

	link, ok := links.WhatsApp(models.RestorationRequest{CustomerName: "Ana", CustomerPhone: strPtr("(11) 98765-4321")})
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511987654321?text="))
	assert.Contains(t, link, "Hello%20Ana%21")

	_, ok = links.WhatsApp(models.RestorationRequest{CustomerName: "Bruno"})
	assert.False(t, ok)
}
